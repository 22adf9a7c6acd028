package router

import (
	"strings"

	"github.com/techmarket-api/internal/cache"
	"github.com/techmarket-api/internal/config"
	publichandlers "github.com/techmarket-api/internal/http/handlers/public"
	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()
	h := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	if cfg.Metrics.Enabled {
		metrics := NewMetrics(cfg.Metrics.Namespace)
		r.Use(metrics.Middleware())
		metricsPath := strings.TrimSpace(cfg.Metrics.Path)
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		r.GET(metricsPath, metrics.Handler())
	}
	r.NoRoute(NoRouteHandler)

	r.GET("/healthz", h.Healthz)

	loginRule := RateLimitRule{
		Prefix:        cache.Key("rate", "login"),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts, retry in %d seconds",
	}

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/healthz", h.Healthz)

		products := apiV1.Group("/products")
		{
			products.GET("", h.ListProducts)
			products.POST("", h.CreateProduct)
			products.GET("/:id", h.GetProduct)
			products.PATCH("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)
		}

		categories := apiV1.Group("/categories")
		{
			categories.GET("", h.ListCategories)
			categories.POST("", h.CreateCategory)
			categories.GET("/product/:id", h.GetProductCategory)
		}

		users := apiV1.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.POST("", h.CreateUser)
			users.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("username")), h.Login)
			users.GET("/:id", h.GetUser)
			users.DELETE("/:id", h.DeleteUser)
		}

		reviews := apiV1.Group("/reviews")
		{
			reviews.GET("", h.ListReviews)
			reviews.POST("", h.CreateReview)
			reviews.GET("/product/:id", h.ListProductReviews)
			reviews.GET("/:id", h.GetReview)
			reviews.DELETE("/:id", h.DeleteReview)
		}

		cart := apiV1.Group("/cart")
		{
			cart.GET("/:user_id", h.GetCart)
			cart.DELETE("/:user_id", h.ClearCart)
			cart.POST("/:user_id/items", h.AddCartItem)
			cart.PATCH("/:user_id/items/:product_id", h.UpdateCartItem)
			cart.DELETE("/:user_id/items/:product_id", h.RemoveCartItem)
		}
	}

	return r
}
