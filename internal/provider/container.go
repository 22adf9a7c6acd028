package provider

import (
	"github.com/techmarket-api/internal/cache"
	"github.com/techmarket-api/internal/config"
	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/queue"
	"github.com/techmarket-api/internal/repository"
	"github.com/techmarket-api/internal/service"

	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	CartRepo     repository.CartRepository

	// Services
	PurgeService    *service.PurgeService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	UserService     *service.UserService
	ReviewService   *service.ReviewService
	CartService     *service.CartService
}

// NewContainer 初始化容器，使用全局数据库连接
func NewContainer(cfg *config.Config) *Container {
	// 初始化 Redis（登录限流）
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}
	return NewContainerWithDB(cfg, models.DB, queueClient)
}

// NewContainerWithDB 使用指定连接初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) *Container {
	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	c.PurgeService = service.NewPurgeService(c.CartRepo, c.ReviewRepo, c.QueueClient)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.PurgeService)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.ProductRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.PurgeService)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo, c.UserRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.UserRepo)
}

// Close 释放容器持有的外部连接（队列客户端与 Redis）
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var err error
	if c.QueueClient != nil {
		err = multierr.Append(err, c.QueueClient.Close())
	}
	return multierr.Append(err, cache.Close())
}
