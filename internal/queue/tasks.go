package queue

import (
	"encoding/json"
	"errors"

	"github.com/techmarket-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskProductPurge 商品删除后的关联数据清理任务
	TaskProductPurge = constants.TaskProductPurge
	// TaskUserPurge 用户删除后的关联数据清理任务
	TaskUserPurge = constants.TaskUserPurge
)

// ErrQueueDisabled 队列未启用
var ErrQueueDisabled = errors.New("queue disabled")

// ProductPurgePayload 商品清理任务载荷
type ProductPurgePayload struct {
	ProductID uint `json:"product_id"`
}

// UserPurgePayload 用户清理任务载荷
type UserPurgePayload struct {
	UserID uint `json:"user_id"`
}

// NewProductPurgeTask 创建商品清理任务
func NewProductPurgeTask(payload ProductPurgePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskProductPurge, body), nil
}

// NewUserPurgeTask 创建用户清理任务
func NewUserPurgeTask(payload UserPurgePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskUserPurge, body), nil
}
