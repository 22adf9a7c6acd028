package service

import (
	"strings"

	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/repository"
)

// CreateReviewInput 创建评价输入，评分已经过 ParseRating 校验
type CreateReviewInput struct {
	ProductID uint
	UserID    uint
	Rating    int
	Comment   string
}

// ReviewService 评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// List 评价列表
func (s *ReviewService) List(page, pageSize int) ([]models.Review, error) {
	return s.reviewRepo.List(repository.ReviewListFilter{Page: page, PageSize: pageSize})
}

// GetByID 获取评价
func (s *ReviewService) GetByID(id uint) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// ListByProduct 获取商品的全部评价
func (s *ReviewService) ListByProduct(productID uint) ([]models.Review, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.reviewRepo.List(repository.ReviewListFilter{ProductID: productID})
}

// Create 创建评价，商品与用户必须存在
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, ErrInvalidRating
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	review := &models.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	logger.Infow("review_created", "review_id", review.ID, "product_id", review.ProductID, "user_id", review.UserID)
	return review, nil
}

// Delete 删除评价
func (s *ReviewService) Delete(id uint) error {
	affected, err := s.reviewRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReviewNotFound
	}
	logger.Infow("review_deleted", "review_id", id)
	return nil
}
