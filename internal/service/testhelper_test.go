package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/queue"
	"github.com/techmarket-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	cart     *CartService
	products *ProductService
	category *CategoryService
	users    *UserService
	reviews  *ReviewService
	purge    *PurgeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.MigrateWith(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	queueClient, err := queue.NewClient(nil)
	require.NoError(t, err)

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	purge := NewPurgeService(cartRepo, reviewRepo, queueClient)

	return &testEnv{
		db:       db,
		cart:     NewCartService(cartRepo, productRepo, userRepo),
		products: NewProductService(productRepo, categoryRepo, purge),
		category: NewCategoryService(categoryRepo, productRepo),
		users:    NewUserService(userRepo, purge),
		reviews:  NewReviewService(reviewRepo, productRepo, userRepo),
		purge:    purge,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createProduct(t *testing.T, name, price string, stock int, available bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		Category:    "Electronics",
		Price:       models.MustMoney(price),
		StockCount:  stock,
		IsAvailable: available,
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}
