package public

import (
	"encoding/json"

	"github.com/techmarket-api/internal/http/handlers/shared"
	"github.com/techmarket-api/internal/http/response"
	"github.com/techmarket-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	ProductID json.Number `json:"product_id"`
	UserID    json.Number `json:"user_id"`
	Rating    json.Number `json:"rating"`
	Comment   string      `json:"comment"`
}

// ListReviews 评价列表
func (h *Handler) ListReviews(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	reviews, err := h.ReviewService.List(page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, reviews)
}

// GetReview 评价详情
func (h *Handler) GetReview(c *gin.Context) {
	id, ok := shared.ParamID(c, "id")
	if !ok {
		return
	}
	review, err := h.ReviewService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, review)
}

// ListProductReviews 商品评价列表
func (h *Handler) ListProductReviews(c *gin.Context) {
	productID, ok := shared.ParamID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.ReviewService.ListByProduct(productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, reviews)
}

// CreateReview 创建评价
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	review, err := h.ReviewService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, "review added", review)
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := shared.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "review removed", gin.H{"id": id})
}

func (r CreateReviewRequest) toInput() (service.CreateReviewInput, error) {
	fields := []struct {
		name  string
		value json.Number
	}{
		{"product_id", r.ProductID},
		{"user_id", r.UserID},
		{"rating", r.Rating},
	}
	for _, field := range fields {
		if shared.NumberString(field.value) == "" {
			return service.CreateReviewInput{}, shared.RequiredField(field.name)
		}
	}
	productID, err := service.ParseID(shared.NumberString(r.ProductID))
	if err != nil {
		return service.CreateReviewInput{}, err
	}
	userID, err := service.ParseID(shared.NumberString(r.UserID))
	if err != nil {
		return service.CreateReviewInput{}, err
	}
	rating, err := service.ParseRating(shared.NumberString(r.Rating))
	if err != nil {
		return service.CreateReviewInput{}, err
	}
	return service.CreateReviewInput{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   r.Comment,
	}, nil
}
