package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/cache"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const projectCacheTTL = 5 * time.Minute

// Pagination describes one page of a listing.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// ProjectUpdate carries a partial project update. Nil fields are left
// untouched.
type ProjectUpdate struct {
	Title       *string
	Client      *string
	Agency      *string
	Type        *model.StringList
	Year        *int
	Duration    *string
	Tools       *model.StringList
	Description *string
	Results     *model.StringList
	Published   *bool
}

// ProjectService exposes the project catalog.
type ProjectService interface {
	List(ctx context.Context, filter repository.ProjectFilter, page, perPage int) ([]model.Project, *Pagination, error)
	Get(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) (*model.Project, error)
	Update(ctx context.Context, id string, update ProjectUpdate) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo  repository.ProjectRepository
	store FileRemover
	cache *cache.Client
}

// FileRemover is the slice of the file store needed for cascade deletes.
type FileRemover interface {
	Remove(name string) error
}

// NewProjectService builds a ProjectService.
func NewProjectService(repo repository.ProjectRepository, store FileRemover, cache *cache.Client) ProjectService {
	return &projectService{repo: repo, store: store, cache: cache}
}

func projectCacheKey(id string) string {
	return "project:" + id
}

// List returns one page of projects matching the filter.
func (s *projectService) List(ctx context.Context, filter repository.ProjectFilter, page, perPage int) ([]model.Project, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	projects, total, err := s.repo.List(ctx, filter, page, perPage)
	if err != nil {
		return nil, nil, fmt.Errorf("list projects: %w", err)
	}
	for i := range projects {
		normalizeProject(&projects[i])
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return projects, &Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}, nil
}

// Get returns a project with its gallery, serving from cache when possible.
func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectCacheKey(id)); data != nil {
		var cached model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			normalizeProject(&cached)
			return &cached, nil
		}
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	normalizeProject(project)

	if payload, err := json.Marshal(project); err == nil {
		_ = s.cache.Set(ctx, projectCacheKey(id), payload, projectCacheTTL)
	}
	return project, nil
}

// Create stores a new project. A missing ID gets a generated one;
// caller-supplied IDs must not collide.
func (s *projectService) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	exists, err := s.repo.Exists(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("check project id: %w", err)
	}
	if exists {
		return nil, errors.ErrProjectIDExists
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	_ = s.cache.Delete(ctx, statsCacheKey)
	normalizeProject(project)
	return project, nil
}

// Update applies a partial update and returns the refreshed record.
func (s *projectService) Update(ctx context.Context, id string, update ProjectUpdate) (*model.Project, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	fields := update.columns()
	if len(fields) > 0 {
		if err := s.repo.Updates(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update project: %w", err)
		}
	}
	_ = s.cache.Delete(ctx, projectCacheKey(id))
	_ = s.cache.Delete(ctx, statsCacheKey)

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload project: %w", err)
	}
	normalizeProject(project)
	return project, nil
}

// Delete removes a project, its image rows, and their files.
func (s *projectService) Delete(ctx context.Context, id string) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProjectNotFound
		}
		return fmt.Errorf("find project: %w", err)
	}

	// Files go first; a failure here leaves the catalog untouched.
	for _, image := range project.Images {
		if err := s.store.Remove(image.Filename); err != nil {
			return fmt.Errorf("remove image file %s: %w", image.Filename, err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectCacheKey(id))
	_ = s.cache.Delete(ctx, statsCacheKey)
	return nil
}

func (u ProjectUpdate) columns() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Client != nil {
		fields["client"] = *u.Client
	}
	if u.Agency != nil {
		fields["agency"] = *u.Agency
	}
	if u.Type != nil {
		fields["type"] = *u.Type
	}
	if u.Year != nil {
		fields["year"] = *u.Year
	}
	if u.Duration != nil {
		fields["duration"] = *u.Duration
	}
	if u.Tools != nil {
		fields["tools"] = *u.Tools
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Results != nil {
		fields["results"] = *u.Results
	}
	if u.Published != nil {
		fields["published"] = *u.Published
	}
	return fields
}

// normalizeProject keeps list-valued fields non-nil so they serialize as
// empty JSON arrays.
func normalizeProject(p *model.Project) {
	if p.Images == nil {
		p.Images = []model.ProjectImage{}
	}
	if p.Type == nil {
		p.Type = model.StringList{}
	}
	if p.Tools == nil {
		p.Tools = model.StringList{}
	}
	if p.Results == nil {
		p.Results = model.StringList{}
	}
}
