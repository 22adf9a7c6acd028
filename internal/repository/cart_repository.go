package repository

import (
	"errors"
	"time"

	"github.com/techmarket-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	FetchItems(userID uint) ([]models.CartItem, error)
	FetchItem(userID, productID uint) (*models.CartItem, error)
	UpsertItem(userID, productID uint, quantity int) error
	IncrementItem(userID, productID uint, delta, maxQuantity int) (int64, error)
	DeleteItem(userID, productID uint) (int64, error)
	DeleteAllItems(userID uint) (int64, error)
	DeleteByProduct(productID uint) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction 执行事务
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// FetchItems 获取用户购物车项（附带商品快照）
func (r *GormCartRepository) FetchItems(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FetchItem 获取单个购物车项，不存在返回 nil
func (r *GormCartRepository) FetchItem(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpsertItem 写入购物车项：不存在则插入，存在则覆盖数量
func (r *GormCartRepository) UpsertItem(userID, productID uint, quantity int) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: cartConflictColumns(),
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
}

// IncrementItem 合并写入：不存在则插入 delta，存在则累加；
// 累加后超过 maxQuantity 时不更新，返回影响行数 0
func (r *GormCartRepository) IncrementItem(userID, productID uint, delta, maxQuantity int) (int64, error) {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  delta,
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns: cartConflictColumns(),
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", delta),
			"updated_at": time.Now(),
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("cart_items.quantity + ? <= ?", delta, maxQuantity),
		}},
	}).Create(&item)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteItem 删除单个购物车项
func (r *GormCartRepository) DeleteItem(userID, productID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteAllItems 清空用户购物车
func (r *GormCartRepository) DeleteAllItems(userID uint) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteByProduct 删除引用某商品的全部购物车项
func (r *GormCartRepository) DeleteByProduct(productID uint) (int64, error) {
	result := r.db.Where("product_id = ?", productID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

func cartConflictColumns() []clause.Column {
	return []clause.Column{{Name: "user_id"}, {Name: "product_id"}}
}
