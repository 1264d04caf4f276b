package database

import (
	"context"
	"errors"
	"fmt"

	"cafewifi/model"

	"gorm.io/gorm"
)

var (
	ErrCafeNotFound  = errors.New("cafe not found")
	ErrDuplicateName = errors.New("a cafe with this name already exists")
)

// CafeStore is the storage handle for the cafe table.
type CafeStore struct {
	db *gorm.DB
}

func NewCafeStore(db *gorm.DB) *CafeStore {
	return &CafeStore{db: db}
}

// List returns every cafe in primary-key order.
func (s *CafeStore) List(ctx context.Context) ([]model.Cafe, error) {
	cafes := []model.Cafe{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cafes: %w", err)
	}
	return cafes, nil
}

func (s *CafeStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Cafe{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count cafes: %w", err)
	}
	return n, nil
}

// Create inserts the cafe and sets its ID. Any ID set by the caller is ignored.
func (s *CafeStore) Create(ctx context.Context, cafe *model.Cafe) error {
	cafe.ID = 0
	if err := s.db.WithContext(ctx).Create(cafe).Error; err != nil {
		return translate(err, "failed to create cafe")
	}
	return nil
}

// CreateMany inserts all cafes in a single statement.
func (s *CafeStore) CreateMany(ctx context.Context, cafes []model.Cafe) error {
	if len(cafes) == 0 {
		return nil
	}
	for i := range cafes {
		cafes[i].ID = 0
	}
	if err := s.db.WithContext(ctx).Create(&cafes).Error; err != nil {
		return translate(err, "failed to create cafes")
	}
	return nil
}

// Delete removes the cafe with the given id. Nothing is removed and
// ErrCafeNotFound is returned when no such cafe exists.
func (s *CafeStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Cafe{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete cafe %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCafeNotFound
	}
	return nil
}

func (s *CafeStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func translate(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	return fmt.Errorf("%s: %w", msg, err)
}
