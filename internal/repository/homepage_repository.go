package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// HomepageRepository defines persistence for the singleton homepage record.
type HomepageRepository interface {
	First(ctx context.Context) (*model.HomePage, error)
	Create(ctx context.Context, page *model.HomePage) error
	Save(ctx context.Context, page *model.HomePage) error
}

type homepageRepository struct {
	db *gorm.DB
}

// NewHomepageRepository creates a new homepage repository.
func NewHomepageRepository(db *gorm.DB) HomepageRepository {
	return &homepageRepository{db: db}
}

// First returns the singleton row.
func (r *homepageRepository) First(ctx context.Context) (*model.HomePage, error) {
	var page model.HomePage
	if err := r.db.WithContext(ctx).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// Create inserts the singleton row.
func (r *homepageRepository) Create(ctx context.Context, page *model.HomePage) error {
	return r.db.WithContext(ctx).Create(page).Error
}

// Save persists changes to the singleton row.
func (r *homepageRepository) Save(ctx context.Context, page *model.HomePage) error {
	return r.db.WithContext(ctx).Save(page).Error
}
