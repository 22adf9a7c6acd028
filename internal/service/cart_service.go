package service

import (
	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultAddQuantity 加购未指定数量时的默认值
const DefaultAddQuantity = 1

// CartLine 购物车行（用于响应）
type CartLine struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  models.Money    `json:"subtotal"`
	Product   *models.Product `json:"product"`
}

// CartView 用户购物车视图
type CartView struct {
	UserID     uint         `json:"user_id"`
	Items      []CartLine   `json:"items"`
	TotalItems int          `json:"total_items"`
	TotalPrice models.Money `json:"total_price"`
}

// CartUpdateResult 修改数量结果，数量为 0 时 Removed 为 true
type CartUpdateResult struct {
	Removed   bool             `json:"removed"`
	ProductID uint             `json:"product_id"`
	Item      *models.CartItem `json:"item,omitempty"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// GetCart 获取用户购物车，商品已删除的行会被清理
func (s *CartService) GetCart(userID uint) (*CartView, error) {
	if err := s.ensureUser(s.userRepo, userID); err != nil {
		return nil, err
	}
	items, err := s.cartRepo.FetchItems(userID)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			if _, err := s.cartRepo.DeleteItem(userID, item.ProductID); err != nil {
				logger.Warnw("cart_stale_item_delete_failed",
					"user_id", userID,
					"product_id", item.ProductID,
					"error", err,
				)
			}
			continue
		}
		subtotal := product.Price.Times(item.Quantity)
		total = total.Add(subtotal)
		lines = append(lines, CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  models.NewMoneyFromDecimal(subtotal),
			Product:   product,
		})
	}

	return &CartView{
		UserID:     userID,
		Items:      lines,
		TotalItems: len(lines),
		TotalPrice: models.NewMoneyFromDecimal(total),
	}, nil
}

// AddItem 加入购物车：已存在则累加数量
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrQuantityBelowMinimum
	}

	var added *models.CartItem
	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		if err := s.ensureUser(s.userRepo.WithTx(tx), userID); err != nil {
			return err
		}
		product, err := s.productRepo.WithTx(tx).GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if !product.IsAvailable {
			return ErrProductUnavailable
		}
		if quantity > product.StockCount {
			return newStockError(product.StockCount)
		}

		// 合并写入在库存上限内条件更新，超限时不影响任何行
		affected, err := cartRepo.IncrementItem(userID, productID, quantity, product.StockCount)
		if err != nil {
			return err
		}
		if affected == 0 {
			return newStockError(product.StockCount)
		}

		item, err := cartRepo.FetchItem(userID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrCartItemNotFound
		}
		added = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("cart_item_added",
		"user_id", userID,
		"product_id", productID,
		"quantity", quantity,
		"line_quantity", added.Quantity,
	)
	return added, nil
}

// UpdateQuantity 覆盖购物车项数量，数量为 0 时删除
func (s *CartService) UpdateQuantity(userID, productID uint, quantity int) (*CartUpdateResult, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	result := &CartUpdateResult{ProductID: productID}
	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		existing, err := cartRepo.FetchItem(userID, productID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrCartItemNotFound
		}

		if quantity == 0 {
			if _, err := cartRepo.DeleteItem(userID, productID); err != nil {
				return err
			}
			result.Removed = true
			return nil
		}

		product, err := s.productRepo.WithTx(tx).GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if quantity > product.StockCount {
			return newStockError(product.StockCount)
		}
		if err := cartRepo.UpsertItem(userID, productID, quantity); err != nil {
			return err
		}
		item, err := cartRepo.FetchItem(userID, productID)
		if err != nil {
			return err
		}
		result.Item = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("cart_item_quantity_updated",
		"user_id", userID,
		"product_id", productID,
		"quantity", quantity,
		"removed", result.Removed,
	)
	return result, nil
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(userID, productID uint) error {
	affected, err := s.cartRepo.DeleteItem(userID, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	logger.Infow("cart_item_removed", "user_id", userID, "product_id", productID)
	return nil
}

// ClearCart 清空购物车，空购物车同样视为成功
func (s *CartService) ClearCart(userID uint) (int64, error) {
	affected, err := s.cartRepo.DeleteAllItems(userID)
	if err != nil {
		return 0, err
	}
	logger.Infow("cart_cleared", "user_id", userID, "removed_items", affected)
	return affected, nil
}

func (s *CartService) ensureUser(userRepo repository.UserRepository, userID uint) error {
	user, err := userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
