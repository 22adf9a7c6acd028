package repository

import (
	"errors"

	"github.com/techmarket-api/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository 评价数据访问接口
type ReviewRepository interface {
	List(filter ReviewListFilter) ([]models.Review, error)
	GetByID(id uint) (*models.Review, error)
	Create(review *models.Review) error
	Delete(id uint) (int64, error)
	DeleteByProduct(productID uint) (int64, error)
	DeleteByUser(userID uint) (int64, error)
	WithTx(tx *gorm.DB) ReviewRepository
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx 绑定事务
func (r *GormReviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// List 评价列表，可按商品/用户过滤
func (r *GormReviewRepository) List(filter ReviewListFilter) ([]models.Review, error) {
	query := r.db.Model(&models.Review{})
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	query = applyPagination(query.Order("id ASC"), filter.Page, filter.PageSize)

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByID 根据 ID 获取评价
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Create 创建评价
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Delete 删除评价
func (r *GormReviewRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Review{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByProduct 删除某商品的全部评价
func (r *GormReviewRepository) DeleteByProduct(productID uint) (int64, error) {
	result := r.db.Where("product_id = ?", productID).Delete(&models.Review{})
	return result.RowsAffected, result.Error
}

// DeleteByUser 删除某用户的全部评价
func (r *GormReviewRepository) DeleteByUser(userID uint) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Review{})
	return result.RowsAffected, result.Error
}
