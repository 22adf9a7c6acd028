package public

import (
	"strings"

	"github.com/techmarket-api/internal/http/handlers/shared"
	"github.com/techmarket-api/internal/http/response"
	"github.com/techmarket-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	available, err := shared.QueryBool(c, "available")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	categoryID, err := shared.QueryID(c, "category_id")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	page, pageSize := shared.ParsePagination(c)

	products, total, err := h.ProductService.List(service.ProductListInput{
		Page:       page,
		PageSize:   pageSize,
		Sort:       c.Query("sort"),
		Keyword:    strings.TrimSpace(c.Query("q")),
		Available:  available,
		CategoryID: categoryID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParamID(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req service.CreateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product, err := h.ProductService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, "product added", product)
}

// UpdateProduct 局部更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParamID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product, err := h.ProductService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product updated", product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product removed", gin.H{"id": id})
}
