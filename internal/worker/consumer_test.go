package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/techmarket-api/internal/config"
	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/provider"
	"github.com/techmarket-api/internal/queue"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumer(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	container := provider.NewContainerWithDB(&config.Config{}, db, queueClient)
	return NewConsumer(container), db
}

func TestHandleProductPurgeRemovesCartLinesAndReviews(t *testing.T) {
	consumer, db := setupConsumer(t)
	product := &models.Product{Name: "Drone", Category: "Toys", Price: models.MustMoney("99.00"), StockCount: 3, IsAvailable: true}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 2}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	if err := db.Create(&models.Review{UserID: 1, ProductID: product.ID, Rating: 4}).Error; err != nil {
		t.Fatalf("create review failed: %v", err)
	}

	task, err := queue.NewProductPurgeTask(queue.ProductPurgePayload{ProductID: product.ID})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleProductPurge(context.Background(), task); err != nil {
		t.Fatalf("handle product purge failed: %v", err)
	}

	var cartCount, reviewCount int64
	db.Model(&models.CartItem{}).Count(&cartCount)
	db.Model(&models.Review{}).Count(&reviewCount)
	if cartCount != 0 || reviewCount != 0 {
		t.Fatalf("purge should remove all rows, cart=%d reviews=%d", cartCount, reviewCount)
	}
}

func TestHandleUserPurgeKeepsOtherUsers(t *testing.T) {
	consumer, db := setupConsumer(t)
	product := &models.Product{Name: "Lamp", Category: "Home", Price: models.MustMoney("19.00"), StockCount: 3, IsAvailable: true}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	for _, userID := range []uint{1, 2} {
		if err := db.Create(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 1}).Error; err != nil {
			t.Fatalf("create cart item failed: %v", err)
		}
	}

	task, err := queue.NewUserPurgeTask(queue.UserPurgePayload{UserID: 1})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleUserPurge(context.Background(), task); err != nil {
		t.Fatalf("handle user purge failed: %v", err)
	}

	var remaining []models.CartItem
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("list cart items failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].UserID != 2 {
		t.Fatalf("only user 2 line should remain, got %+v", remaining)
	}
}

func TestHandlePurgeBadPayloadSkipsRetry(t *testing.T) {
	consumer, _ := setupConsumer(t)

	task := asynq.NewTask(queue.TaskProductPurge, []byte("{broken"))
	if err := consumer.handleProductPurge(context.Background(), task); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("broken payload want SkipRetry got %v", err)
	}

	zero, _ := queue.NewUserPurgeTask(queue.UserPurgePayload{})
	if err := consumer.handleUserPurge(context.Background(), zero); err != nil {
		t.Fatalf("zero user id should be skipped, got %v", err)
	}
}
