package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ProjectFilter narrows a project listing. Zero values mean "not filtered";
// PublishedOnly defaults to true at the handler boundary.
type ProjectFilter struct {
	Client        string
	Agency        string
	Type          string
	Year          int
	Search        string
	PublishedOnly bool
}

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Updates(ctx context.Context, id string, fields map[string]interface{}) error
	FindByID(ctx context.Context, id string) (*model.Project, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ProjectFilter, page, perPage int) ([]model.Project, int64, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
	CountDistinctClients(ctx context.Context) (int64, error)
	CountDistinctAgencies(ctx context.Context) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// orderedImages preloads gallery images sorted for deterministic output.
func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

// Create creates a new project.
func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Updates applies a partial update. GORM bumps updated_at on any change.
func (r *projectRepository) Updates(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// FindByID finds a project by ID with its images in gallery order.
func (r *projectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Preload("Images", orderedImages).
		Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists reports whether a project with the given ID exists.
func (r *projectRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns one page of projects matching the filter, most recently
// updated first, along with the total match count.
func (r *projectRepository) List(ctx context.Context, filter ProjectFilter, page, perPage int) ([]model.Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Project{})

	if filter.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	if filter.Client != "" {
		q = q.Where("LOWER(client) LIKE ?", "%"+strings.ToLower(filter.Client)+"%")
	}
	if filter.Agency != "" {
		q = q.Where("LOWER(agency) LIKE ?", "%"+strings.ToLower(filter.Agency)+"%")
	}
	if filter.Type != "" {
		// type is a serialized JSON array; match the quoted tag exactly
		q = q.Where("type LIKE ?", `%"`+filter.Type+`"%`)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Search != "" {
		s := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(client) LIKE ? OR LOWER(agency) LIKE ? OR LOWER(description) LIKE ?",
			s, s, s, s,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	if err := q.Preload("Images", orderedImages).
		Order("updated_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Delete removes a project and its image rows in one transaction.
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Project{}).Error
	})
}

// Count returns the total number of projects.
func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).Count(&count).Error
	return count, err
}

// CountPublished returns the number of published projects.
func (r *projectRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("published = ?", true).Count(&count).Error
	return count, err
}

// CountDistinctClients returns the number of unique clients.
func (r *projectRepository) CountDistinctClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Distinct("client").Count(&count).Error
	return count, err
}

// CountDistinctAgencies returns the number of unique agencies.
func (r *projectRepository) CountDistinctAgencies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Distinct("agency").Count(&count).Error
	return count, err
}
