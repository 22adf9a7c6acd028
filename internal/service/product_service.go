package service

import (
	"strings"

	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/repository"
)

// ProductListInput 商品列表查询参数
type ProductListInput struct {
	Page       int
	PageSize   int
	Sort       string
	Keyword    string
	Available  *bool
	CategoryID *uint
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name        string        `json:"name" validate:"required,max=255"`
	Category    string        `json:"category" validate:"required,max=100"`
	Description string        `json:"description"`
	Price       *models.Money `json:"price" validate:"required"`
	StockCount  int           `json:"stock_count" validate:"min=0"`
	Brand       string        `json:"brand" validate:"max=100"`
	ImageURL    string        `json:"image_url" validate:"omitempty,url,max=500"`
	IsAvailable *bool         `json:"is_available"`
	CategoryID  *uint         `json:"category_id"`
}

// UpdateProductInput 商品局部更新输入，nil 字段保持不变
type UpdateProductInput struct {
	Name        *string       `json:"name" validate:"omitempty,max=255"`
	Category    *string       `json:"category" validate:"omitempty,max=100"`
	Description *string       `json:"description"`
	Price       *models.Money `json:"price"`
	StockCount  *int          `json:"stock_count" validate:"omitempty,min=0"`
	Brand       *string       `json:"brand" validate:"omitempty,max=100"`
	ImageURL    *string       `json:"image_url" validate:"omitempty,url,max=500"`
	IsAvailable *bool         `json:"is_available"`
	CategoryID  *uint         `json:"category_id"`
}

func (in UpdateProductInput) empty() bool {
	return in.Name == nil && in.Category == nil && in.Description == nil &&
		in.Price == nil && in.StockCount == nil && in.Brand == nil &&
		in.ImageURL == nil && in.IsAvailable == nil && in.CategoryID == nil
}

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	purgeService *PurgeService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, purgeService *PurgeService) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		purgeService: purgeService,
	}
}

// List 商品列表
func (s *ProductService) List(input ProductListInput) ([]models.Product, int64, error) {
	sort := strings.ToLower(strings.TrimSpace(input.Sort))
	switch sort {
	case repository.ProductSortDefault, repository.ProductSortPrice, repository.ProductSortPriceDesc:
	default:
		return nil, 0, ErrInvalidSort
	}
	return s.productRepo.List(repository.ProductListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		Sort:       sort,
		Keyword:    input.Keyword,
		Available:  input.Available,
		CategoryID: input.CategoryID,
	})
}

// GetByID 获取商品详情
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if err := s.ensureCategory(input.CategoryID); err != nil {
		return nil, err
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}
	product := &models.Product{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       models.NewMoneyFromDecimal(input.Price.Decimal),
		StockCount:  input.StockCount,
		Brand:       strings.TrimSpace(input.Brand),
		ImageURL:    input.ImageURL,
		IsAvailable: isAvailable,
		CategoryID:  input.CategoryID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	logger.Infow("product_created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// Update 局部更新商品
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	if input.empty() {
		return nil, ErrEmptyUpdate
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, ErrProductNameRequired
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) == "" {
		return nil, ErrProductCategoryRequired
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.ensureCategory(input.CategoryID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = models.NewMoneyFromDecimal(input.Price.Decimal)
	}
	if input.StockCount != nil {
		product.StockCount = *input.StockCount
	}
	if input.Brand != nil {
		product.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	logger.Infow("product_updated", "product_id", product.ID)
	return product, nil
}

// Delete 删除商品并清理购物车项与评价
func (s *ProductService) Delete(id uint) error {
	affected, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	logger.Infow("product_deleted", "product_id", id)
	if s.purgeService == nil {
		return nil
	}
	return s.purgeService.DispatchProductPurge(id)
}

func (s *ProductService) ensureCategory(categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categoryRepo.GetByID(*categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}
