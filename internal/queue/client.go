package queue

import (
	"fmt"
	"strings"
	"time"

	"github.com/techmarket-api/internal/config"
	"github.com/techmarket-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault
)

// Client 队列客户端封装
type Client struct {
	client       *asynq.Client
	enabled      bool
	defaultQueue string
}

// NewClient 创建队列客户端，未启用时返回禁用状态的客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{enabled: false, defaultQueue: DefaultQueue}, nil
	}
	client := asynq.NewClient(buildRedisOpt(cfg))
	return &Client{
		client:       client,
		enabled:      true,
		defaultQueue: DefaultQueue,
	}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueProductPurge 推送商品关联数据清理任务
func (c *Client) EnqueueProductPurge(payload ProductPurgePayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return ErrQueueDisabled
	}
	task, err := NewProductPurgeTask(payload)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, c.purgeOptions(opts)...)
	return err
}

// EnqueueUserPurge 推送用户关联数据清理任务
func (c *Client) EnqueueUserPurge(payload UserPurgePayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return ErrQueueDisabled
	}
	task, err := NewUserPurgeTask(payload)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, c.purgeOptions(opts)...)
	return err
}

func (c *Client) purgeOptions(extra []asynq.Option) []asynq.Option {
	options := []asynq.Option{
		asynq.Queue(c.defaultQueue),
		asynq.MaxRetry(constants.PurgeMaxRetry),
		asynq.Timeout(time.Duration(constants.PurgeTaskTimeoutMS) * time.Millisecond),
	}
	return append(options, extra...)
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	opt := buildRedisOpt(cfg)
	concurrency := 10
	if cfg != nil && cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}
	queues := map[string]int{DefaultQueue: 1}
	if cfg != nil && len(cfg.Queues) > 0 {
		queues = cfg.Queues
	}
	return opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host := "127.0.0.1"
	port := 6379
	password := ""
	db := 0
	if cfg != nil {
		if strings.TrimSpace(cfg.Host) != "" {
			host = strings.TrimSpace(cfg.Host)
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		password = cfg.Password
		db = cfg.DB
	}
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	}
}
