package worker

import (
	"context"
	"encoding/json"

	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/provider"
	"github.com/techmarket-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskProductPurge, c.handleProductPurge)
	mux.HandleFunc(queue.TaskUserPurge, c.handleUserPurge)
}

func (c *Consumer) handleProductPurge(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil || c.Container == nil {
		logger.Debugw("worker_product_purge_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ProductPurgePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_product_purge_unmarshal_failed", "error", err)
		// 载荷损坏时重试无意义
		return asynq.SkipRetry
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_product_purge_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}
	if c.PurgeService == nil {
		logger.Warnw("worker_product_purge_skip_service_nil", "product_id", payload.ProductID)
		return nil
	}
	if _, err := c.PurgeService.PurgeProduct(payload.ProductID); err != nil {
		logger.Warnw("worker_product_purge_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleUserPurge(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil || c.Container == nil {
		logger.Debugw("worker_user_purge_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.UserPurgePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_user_purge_unmarshal_failed", "error", err)
		return asynq.SkipRetry
	}
	if payload.UserID == 0 {
		logger.Debugw("worker_user_purge_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	if c.PurgeService == nil {
		logger.Warnw("worker_user_purge_skip_service_nil", "user_id", payload.UserID)
		return nil
	}
	if _, err := c.PurgeService.PurgeUser(payload.UserID); err != nil {
		logger.Warnw("worker_user_purge_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	return nil
}
