package service

import (
	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/queue"
	"github.com/techmarket-api/internal/repository"

	"gorm.io/gorm"
)

// PurgeResult 关联数据清理结果
type PurgeResult struct {
	CartItems int64 `json:"cart_items"`
	Reviews   int64 `json:"reviews"`
}

// PurgeService 商品/用户删除后的关联数据清理
type PurgeService struct {
	cartRepo    repository.CartRepository
	reviewRepo  repository.ReviewRepository
	queueClient *queue.Client
}

// NewPurgeService 创建清理服务
func NewPurgeService(cartRepo repository.CartRepository, reviewRepo repository.ReviewRepository, queueClient *queue.Client) *PurgeService {
	return &PurgeService{
		cartRepo:    cartRepo,
		reviewRepo:  reviewRepo,
		queueClient: queueClient,
	}
}

// PurgeProduct 删除引用商品的购物车项与评价
func (s *PurgeService) PurgeProduct(productID uint) (PurgeResult, error) {
	var result PurgeResult
	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		cartItems, err := s.cartRepo.WithTx(tx).DeleteByProduct(productID)
		if err != nil {
			return err
		}
		reviews, err := s.reviewRepo.WithTx(tx).DeleteByProduct(productID)
		if err != nil {
			return err
		}
		result = PurgeResult{CartItems: cartItems, Reviews: reviews}
		return nil
	})
	if err != nil {
		return PurgeResult{}, err
	}
	logger.Infow("purge_product_done",
		"product_id", productID,
		"cart_items", result.CartItems,
		"reviews", result.Reviews,
	)
	return result, nil
}

// PurgeUser 删除用户的购物车项与评价
func (s *PurgeService) PurgeUser(userID uint) (PurgeResult, error) {
	var result PurgeResult
	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		cartItems, err := s.cartRepo.WithTx(tx).DeleteAllItems(userID)
		if err != nil {
			return err
		}
		reviews, err := s.reviewRepo.WithTx(tx).DeleteByUser(userID)
		if err != nil {
			return err
		}
		result = PurgeResult{CartItems: cartItems, Reviews: reviews}
		return nil
	})
	if err != nil {
		return PurgeResult{}, err
	}
	logger.Infow("purge_user_done",
		"user_id", userID,
		"cart_items", result.CartItems,
		"reviews", result.Reviews,
	)
	return result, nil
}

// DispatchProductPurge 队列可用时异步清理，否则同步执行
func (s *PurgeService) DispatchProductPurge(productID uint) error {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueProductPurge(queue.ProductPurgePayload{ProductID: productID})
		if err == nil {
			logger.Infow("purge_product_enqueued", "product_id", productID)
			return nil
		}
		logger.Warnw("purge_product_enqueue_failed", "product_id", productID, "fallback", "inline", "error", err)
	}
	_, err := s.PurgeProduct(productID)
	return err
}

// DispatchUserPurge 队列可用时异步清理，否则同步执行
func (s *PurgeService) DispatchUserPurge(userID uint) error {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueUserPurge(queue.UserPurgePayload{UserID: userID})
		if err == nil {
			logger.Infow("purge_user_enqueued", "user_id", userID)
			return nil
		}
		logger.Warnw("purge_user_enqueue_failed", "user_id", userID, "fallback", "inline", "error", err)
	}
	_, err := s.PurgeUser(userID)
	return err
}
