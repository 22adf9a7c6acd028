package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/techmarket-api/internal/app"
	"github.com/techmarket-api/internal/config"
	"github.com/techmarket-api/internal/logger"
	"github.com/techmarket-api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedProduct struct {
	Name        string
	Category    string
	Description string
	Price       string
	StockCount  int
	Brand       string
	ImageURL    string
	IsAvailable bool
}

var seedProducts = []seedProduct{
	{
		Name:        "MacBook Pro 14",
		Category:    "Laptops",
		Description: "14-inch laptop with M3 Pro chip, 18GB RAM and 512GB SSD",
		Price:       "1999.99",
		StockCount:  15,
		Brand:       "Apple",
		ImageURL:    "https://example.com/images/macbook-pro-14.jpg",
		IsAvailable: true,
	},
	{
		Name:        "ThinkPad X1 Carbon",
		Category:    "Laptops",
		Description: "Business ultrabook with 14-inch display and 32GB RAM",
		Price:       "1649.00",
		StockCount:  8,
		Brand:       "Lenovo",
		ImageURL:    "https://example.com/images/thinkpad-x1.jpg",
		IsAvailable: true,
	},
	{
		Name:        "Galaxy S24",
		Category:    "Smartphones",
		Description: "6.2-inch smartphone with 256GB storage",
		Price:       "899.99",
		StockCount:  25,
		Brand:       "Samsung",
		ImageURL:    "https://example.com/images/galaxy-s24.jpg",
		IsAvailable: true,
	},
	{
		Name:        "Pixel 8",
		Category:    "Smartphones",
		Description: "Android smartphone with Tensor G3",
		Price:       "699.00",
		StockCount:  0,
		Brand:       "Google",
		ImageURL:    "https://example.com/images/pixel-8.jpg",
		IsAvailable: false,
	},
	{
		Name:        "USB-C Cable 2m",
		Category:    "Accessories",
		Description: "Braided 100W USB-C charging cable",
		Price:       "10.99",
		StockCount:  200,
		Brand:       "Anker",
		ImageURL:    "https://example.com/images/usb-c-cable.jpg",
		IsAvailable: true,
	},
	{
		Name:        "MX Master 3S",
		Category:    "Accessories",
		Description: "Wireless ergonomic mouse",
		Price:       "24.99",
		StockCount:  40,
		Brand:       "Logitech",
		ImageURL:    "https://example.com/images/mx-master-3s.jpg",
		IsAvailable: true,
	},
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	if err := app.InitDatabase(cfg); err != nil {
		stdLog.Fatalf("Failed to init database: %v", err)
	}

	if err := models.DB.Transaction(func(tx *gorm.DB) error {
		categoryIDs, err := seedCategories(tx)
		if err != nil {
			return err
		}
		if err := seedCatalog(tx, categoryIDs); err != nil {
			return err
		}
		return seedTestUser(tx, os.Getenv("SEED_TEST_USER_PASSWORD"))
	}); err != nil {
		stdLog.Fatalf("Seeding failed: %v", err)
	}
	logger.Infow("seed_completed", "products", len(seedProducts))
}

func seedCategories(tx *gorm.DB) (map[string]uint, error) {
	ids := make(map[string]uint)
	for _, product := range seedProducts {
		if _, ok := ids[product.Category]; ok {
			continue
		}
		category := models.Category{
			Name:        product.Category,
			Description: fmt.Sprintf("Category for %s products", product.Category),
		}
		if err := tx.Where("name = ?", category.Name).FirstOrCreate(&category).Error; err != nil {
			return nil, fmt.Errorf("seed category %s: %w", product.Category, err)
		}
		ids[product.Category] = category.ID
		logger.Infow("seed_category_ready", "name", category.Name, "id", category.ID)
	}
	return ids, nil
}

func seedCatalog(tx *gorm.DB, categoryIDs map[string]uint) error {
	for _, item := range seedProducts {
		price, err := models.NewMoneyFromString(item.Price)
		if err != nil {
			return fmt.Errorf("seed product %s price: %w", item.Name, err)
		}
		categoryID := categoryIDs[item.Category]
		product := models.Product{
			Name:        item.Name,
			Category:    item.Category,
			Description: item.Description,
			Price:       price,
			StockCount:  item.StockCount,
			Brand:       item.Brand,
			ImageURL:    item.ImageURL,
			IsAvailable: item.IsAvailable,
			CategoryID:  &categoryID,
		}
		if err := tx.Where("name = ?", product.Name).FirstOrCreate(&product).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", item.Name, err)
		}
		logger.Infow("seed_product_ready", "name", product.Name, "id", product.ID)
	}
	return nil
}

// seedTestUser 创建 testuser，未提供密码时使用开发默认值
func seedTestUser(tx *gorm.DB, password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		password = "password123"
	}
	var count int64
	if err := tx.Model(&models.User{}).Unscoped().Where("username = ?", "testuser").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Infow("seed_user_exists", "username", "testuser")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
	}
	if err := tx.Create(&user).Error; err != nil {
		return fmt.Errorf("seed test user: %w", err)
	}
	logger.Infow("seed_user_created", "username", user.Username, "id", user.ID)
	return nil
}
