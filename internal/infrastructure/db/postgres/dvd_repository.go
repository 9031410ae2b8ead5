package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

// DvdRepository is the gorm-backed catalogue store.
type DvdRepository struct {
	db *gorm.DB
}

func NewDvdRepository(db *gorm.DB) *DvdRepository {
	return &DvdRepository{db: db}
}

type dvdRow struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey"`
	Title    string `gorm:"column:title"`
	Genre    string `gorm:"column:genre"`
	Quantity int    `gorm:"column:quantity"`
}

func (dvdRow) TableName() string { return "dvd" }

// BeforeCreate assigns the store-owned id before insert.
func (r *dvdRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *dvdRow) toDomain() *domain.Dvd {
	return &domain.Dvd{
		ID:       r.ID,
		Title:    r.Title,
		Genre:    domain.DvdGenre(r.Genre),
		Quantity: r.Quantity,
	}
}

// Create inserts the dvd and returns it with its assigned id. The unique
// index on LOWER(title) rejects case-variant duplicates at the insert
// path, surfacing as domain.ErrDuplicateTitle.
func (r *DvdRepository) Create(ctx context.Context, dvd *domain.Dvd) (*domain.Dvd, error) {
	row := dvdRow{
		Title:    dvd.Title,
		Genre:    string(dvd.Genre),
		Quantity: dvd.Quantity,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("insert dvd: %w", err)
	}

	return row.toDomain(), nil
}

func (r *DvdRepository) FindByID(ctx context.Context, id string) (*domain.Dvd, error) {
	var row dvdRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDvdNotFound
		}
		return nil, fmt.Errorf("find dvd: %w", err)
	}
	return row.toDomain(), nil
}

// FindByTitle returns all dvds whose title contains the given substring,
// matched case-insensitively.
func (r *DvdRepository) FindByTitle(ctx context.Context, title string) ([]*domain.Dvd, error) {
	pattern := "%" + strings.ToLower(title) + "%"

	var rows []dvdRow
	err := r.db.WithContext(ctx).Where("LOWER(title) LIKE ?", pattern).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find dvds by title: %w", err)
	}
	return toDomainSlice(rows), nil
}

func (r *DvdRepository) FindAll(ctx context.Context) ([]*domain.Dvd, error) {
	var rows []dvdRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find all dvds: %w", err)
	}
	return toDomainSlice(rows), nil
}

// Update persists genre and quantity keyed by id. Zero affected rows is
// reported as domain.ErrDvdNotFound, never as success.
func (r *DvdRepository) Update(ctx context.Context, dvd *domain.Dvd) error {
	res := r.db.WithContext(ctx).Model(&dvdRow{}).Where("id = ?", dvd.ID).Updates(map[string]any{
		"genre":    string(dvd.Genre),
		"quantity": dvd.Quantity,
	})
	if res.Error != nil {
		return fmt.Errorf("update dvd: %w", res.Error)
	}
	if res.RowsAffected != 1 {
		return domain.ErrDvdNotFound
	}
	return nil
}

func (r *DvdRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&dvdRow{})
	if res.Error != nil {
		return fmt.Errorf("delete dvd: %w", res.Error)
	}
	if res.RowsAffected != 1 {
		return domain.ErrDvdNotFound
	}
	return nil
}

// ExistsByTitle reports whether a dvd with this title exists, compared
// case-insensitively.
func (r *DvdRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dvdRow{}).
		Where("LOWER(title) = LOWER(?)", title).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("exists dvd by title: %w", err)
	}
	return count > 0, nil
}

func toDomainSlice(rows []dvdRow) []*domain.Dvd {
	out := make([]*domain.Dvd, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out
}
