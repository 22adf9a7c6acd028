package repository

import (
	"testing"

	"github.com/techmarket-api/internal/models"
)

func TestUserGetByLoginMatchesUsernameOrEmail(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	for _, login := range []string{"alice", "alice@example.com"} {
		got, err := repo.GetByLogin(login)
		if err != nil {
			t.Fatalf("get by %s failed: %v", login, err)
		}
		if got == nil || got.ID != user.ID {
			t.Fatalf("get by %s want user %d got %+v", login, user.ID, got)
		}
	}

	missing, err := repo.GetByLogin("bob")
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing user should be nil")
	}
}

func TestUserCountByUsernameOrEmailIncludesDeleted(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)
	user := &models.User{Username: "carol", Email: "carol@example.com", PasswordHash: "hash"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if _, err := repo.Delete(user.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}

	count, err := repo.CountByUsernameOrEmail("carol", "other@example.com")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}
}

func TestReviewDeleteByProductAndUser(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewReviewRepository(db)
	seed := []models.Review{
		{ProductID: 1, UserID: 1, Rating: 5},
		{ProductID: 1, UserID: 2, Rating: 4},
		{ProductID: 2, UserID: 2, Rating: 3},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("create review failed: %v", err)
		}
	}

	byProduct, err := repo.List(ReviewListFilter{ProductID: 1})
	if err != nil {
		t.Fatalf("list by product failed: %v", err)
	}
	if len(byProduct) != 2 {
		t.Fatalf("reviews for product 1 want 2 got %d", len(byProduct))
	}

	affected, err := repo.DeleteByProduct(1)
	if err != nil || affected != 2 {
		t.Fatalf("delete by product want 2 got %d err=%v", affected, err)
	}
	affected, err = repo.DeleteByUser(2)
	if err != nil || affected != 1 {
		t.Fatalf("delete by user want 1 got %d err=%v", affected, err)
	}
}

func TestReviewRatingCheckConstraint(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewReviewRepository(db)

	if err := repo.Create(&models.Review{ProductID: 1, UserID: 1, Rating: 6}); err == nil {
		t.Fatalf("rating outside 1..5 should violate check constraint")
	}
}
