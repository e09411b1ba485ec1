package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ImageRepository defines gallery image persistence operations.
type ImageRepository interface {
	Create(ctx context.Context, image *model.ProjectImage) error
	Update(ctx context.Context, image *model.ProjectImage) error
	FindByID(ctx context.Context, id uint) (*model.ProjectImage, error)
	FindByProjectAndID(ctx context.Context, projectID string, id uint) (*model.ProjectImage, error)
	MaxOrder(ctx context.Context, projectID string) (int, error)
	UpdateOrder(ctx context.Context, id uint, order int) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	// WithTransaction executes fn against a transaction-scoped repository.
	WithTransaction(ctx context.Context, fn func(repo ImageRepository) error) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// Create creates a new image record.
func (r *imageRepository) Create(ctx context.Context, image *model.ProjectImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// Update updates an existing image record.
func (r *imageRepository) Update(ctx context.Context, image *model.ProjectImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

// FindByID finds an image by ID.
func (r *imageRepository) FindByID(ctx context.Context, id uint) (*model.ProjectImage, error) {
	var image model.ProjectImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// FindByProjectAndID finds an image belonging to the given project.
func (r *imageRepository) FindByProjectAndID(ctx context.Context, projectID string, id uint) (*model.ProjectImage, error) {
	var image model.ProjectImage
	if err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", id, projectID).
		First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// MaxOrder returns the highest order value among a project's images, zero
// when the gallery is empty.
func (r *imageRepository) MaxOrder(ctx context.Context, projectID string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.ProjectImage{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return max, err
}

// UpdateOrder sets the order value for one image.
func (r *imageRepository) UpdateOrder(ctx context.Context, id uint, order int) error {
	return r.db.WithContext(ctx).Model(&model.ProjectImage{}).
		Where("id = ?", id).
		Update("sort_order", order).Error
}

// Delete removes an image record.
func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ProjectImage{}, id).Error
}

// Count returns the total number of images.
func (r *imageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProjectImage{}).Count(&count).Error
	return count, err
}

// WithTransaction executes a function within a database transaction.
func (r *imageRepository) WithTransaction(ctx context.Context, fn func(repo ImageRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&imageRepository{db: tx})
	})
}
