package service

import (
	"strings"

	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/repository"
)

// CreateCategoryInput 创建分类输入
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"max=100"`
	Description string `json:"description"`
}

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// List 分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// Create 创建分类，名称唯一
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	count, err := s.categoryRepo.CountByName(name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}
	category := &models.Category{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	logger.Infow("category_created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// GetByProduct 获取商品所属分类
func (s *CategoryService) GetByProduct(productID uint) (*models.Category, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.CategoryID == nil {
		return nil, ErrCategoryNotFound
	}
	category, err := s.categoryRepo.GetByID(*product.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
