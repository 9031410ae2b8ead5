package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

// AuthRepository is the gorm-backed identity store.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

type userRow struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement"`
	Firstname    string    `gorm:"column:first_name"`
	Lastname     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userRow) TableName() string { return "app_user" }

func (r *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Firstname:    r.Firstname,
		Lastname:     r.Lastname,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
	}
}

// Create persists a new identity. Emails are not case-sensitive:
// "test@example.com" and "Test@example.com" are duplicates. The pre-check
// gives a clean error on the common path; the unique index on LOWER(email)
// backstops races where two inserts pass the check concurrently.
func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRow{}).
		Where("LOWER(email) = LOWER(?)", user.Email).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if count > 0 {
		return nil, domain.ErrDuplicateEmail
	}

	row := userRow{
		Firstname:    user.Firstname,
		Lastname:     user.Lastname,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return row.toDomain(), nil
}

// FindByEmail is used exclusively for the authentication lookup.
func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return row.toDomain(), nil
}
