package public

import (
	"github.com/techmarket-api/internal/http/handlers/shared"
	"github.com/techmarket-api/internal/http/response"
	"github.com/techmarket-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category, err := h.CategoryService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, "category added", category)
}

// GetProductCategory 获取商品所属分类
func (h *Handler) GetProductCategory(c *gin.Context) {
	productID, ok := shared.ParamID(c, "id")
	if !ok {
		return
	}
	category, err := h.CategoryService.GetByProduct(productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, category)
}
