package repository

import (
	"testing"

	"github.com/techmarket-api/internal/models"
)

func TestProductListSortAndFilter(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)

	category := &models.Category{Name: "Audio"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	cheap := createTestProduct(t, db, "Earbuds", "29.99", 10)
	mid := createTestProduct(t, db, "Speaker", "89.50", 3)
	pricey := createTestProduct(t, db, "Amplifier", "499.00", 1)

	mid.CategoryID = &category.ID
	if err := repo.Update(mid); err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	pricey.IsAvailable = false
	if err := repo.Update(pricey); err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	asc, total, err := repo.List(ProductListFilter{Sort: ProductSortPrice})
	if err != nil {
		t.Fatalf("list asc failed: %v", err)
	}
	if total != 3 || len(asc) != 3 {
		t.Fatalf("list total want 3 got %d/%d", total, len(asc))
	}
	if asc[0].ID != cheap.ID || asc[2].ID != pricey.ID {
		t.Fatalf("ascending order unexpected: %d,%d,%d", asc[0].ID, asc[1].ID, asc[2].ID)
	}

	desc, _, err := repo.List(ProductListFilter{Sort: ProductSortPriceDesc})
	if err != nil {
		t.Fatalf("list desc failed: %v", err)
	}
	if desc[0].ID != pricey.ID {
		t.Fatalf("descending first want %d got %d", pricey.ID, desc[0].ID)
	}

	available := true
	onlyAvailable, total, err := repo.List(ProductListFilter{Available: &available})
	if err != nil {
		t.Fatalf("list available failed: %v", err)
	}
	if total != 2 || len(onlyAvailable) != 2 {
		t.Fatalf("available total want 2 got %d", total)
	}

	byCategory, _, err := repo.List(ProductListFilter{CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].ID != mid.ID {
		t.Fatalf("category filter unexpected: %+v", byCategory)
	}

	page, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list page failed: %v", err)
	}
	if total != 3 || len(page) != 1 {
		t.Fatalf("second page want 1 of 3 got %d of %d", len(page), total)
	}
}

func TestProductDeleteIsSoftAndHidesFromGet(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	product := createTestProduct(t, db, "Tablet", "300.00", 2)

	affected, err := repo.Delete(product.ID)
	if err != nil || affected != 1 {
		t.Fatalf("delete want affected=1 got %d err=%v", affected, err)
	}
	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted product should not be returned")
	}

	var count int64
	if err := db.Unscoped().Model(&models.Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("unscoped count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("soft deleted row should remain, count=%d", count)
	}

	affected, err = repo.Delete(product.ID)
	if err != nil || affected != 0 {
		t.Fatalf("second delete want affected=0 got %d err=%v", affected, err)
	}
}

func TestProductListKeywordMatchesNameBrandAndCategory(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)

	phone := createTestProduct(t, db, "Galaxy Phone", "699.00", 5)
	laptop := createTestProduct(t, db, "ThinkBook", "899.00", 5)
	laptop.Brand = "Lenovo"
	if err := repo.Update(laptop); err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	byName, total, err := repo.List(ProductListFilter{Keyword: "phone"})
	if err != nil {
		t.Fatalf("list by name keyword failed: %v", err)
	}
	if total != 1 || byName[0].ID != phone.ID {
		t.Fatalf("name keyword want product %d got %+v", phone.ID, byName)
	}

	byBrand, _, err := repo.List(ProductListFilter{Keyword: "lenovo"})
	if err != nil {
		t.Fatalf("list by brand keyword failed: %v", err)
	}
	if len(byBrand) != 1 || byBrand[0].ID != laptop.ID {
		t.Fatalf("brand keyword want product %d got %+v", laptop.ID, byBrand)
	}

	byCategory, total, err := repo.List(ProductListFilter{Keyword: "electro"})
	if err != nil {
		t.Fatalf("list by category keyword failed: %v", err)
	}
	if total != 2 || len(byCategory) != 2 {
		t.Fatalf("category keyword want 2 got %d", total)
	}
}
