package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

func newTestUser(email string) *domain.User {
	return &domain.User{
		Firstname:    "Alice",
		Lastname:     "Papadopoulou",
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Role:         domain.RoleEmployee,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestAuthRepository_CreateAndFind(t *testing.T) {
	repo := NewAuthRepository(openTestDB(t))

	created, err := repo.Create(context.Background(), newTestUser("alice@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}

	found, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != created.ID || found.Role != domain.RoleEmployee {
		t.Fatalf("unexpected user: %+v", found)
	}
	if found.PasswordHash != created.PasswordHash {
		t.Fatalf("password hash not persisted")
	}
}

func TestAuthRepository_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := NewAuthRepository(openTestDB(t))

	if _, err := repo.Create(context.Background(), newTestUser("a@x.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.Create(context.Background(), newTestUser("A@X.com")); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

// Two concurrent registrations can both pass Create's count check before
// either insert commits. The LOWER(email) unique index must reject the
// second insert on its own, so this writes rows directly.
func TestAuthRepository_IndexRejectsCaseVariantEmail(t *testing.T) {
	db := openTestDB(t)

	first := userRow{
		Firstname:    "Alice",
		Lastname:     "Papadopoulou",
		Email:        "a@x.com",
		PasswordHash: "hash",
		Role:         string(domain.RoleEmployee),
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}

	second := first
	second.ID = 0
	second.Email = "A@X.com"
	if err := db.Create(&second).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicate key error from the index, got %v", err)
	}

	var count int64
	if err := db.Model(&userRow{}).Where("LOWER(email) = ?", "a@x.com").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row for the email, got %d", count)
	}
}

func TestAuthRepository_FindByEmail_CaseInsensitive(t *testing.T) {
	repo := NewAuthRepository(openTestDB(t))

	if _, err := repo.Create(context.Background(), newTestUser("bob@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindByEmail(context.Background(), "BOB@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.Email != "bob@example.com" {
		t.Fatalf("unexpected email: %s", found.Email)
	}
}

func TestAuthRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewAuthRepository(openTestDB(t))

	if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
