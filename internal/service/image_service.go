package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"gorm.io/gorm"

	"portfolio/internal/cache"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

// ImageService manages per-project image galleries.
type ImageService interface {
	Upload(ctx context.Context, projectID string, files []*multipart.FileHeader) ([]model.ProjectImage, error)
	UpdateMetadata(ctx context.Context, id uint, altText, caption *string) (*model.ProjectImage, error)
	Reorder(ctx context.Context, projectID string, imageIDs []uint) error
	Delete(ctx context.Context, id uint) error
}

type imageService struct {
	imageRepo   repository.ImageRepository
	projectRepo repository.ProjectRepository
	store       *storage.FileStore
	cache       *cache.Client
}

// NewImageService builds an ImageService.
func NewImageService(
	imageRepo repository.ImageRepository,
	projectRepo repository.ProjectRepository,
	store *storage.FileStore,
	cache *cache.Client,
) ImageService {
	return &imageService{
		imageRepo:   imageRepo,
		projectRepo: projectRepo,
		store:       store,
		cache:       cache,
	}
}

// Upload saves each accepted file under a generated name, optimizes it, and
// appends it to the project's gallery. Files with disallowed extensions are
// skipped. Order values continue from the current gallery maximum.
//
// Rows are created in a single transaction; files already written when the
// transaction rolls back are left behind as orphans for offline cleanup.
func (s *imageService) Upload(ctx context.Context, projectID string, files []*multipart.FileHeader) ([]model.ProjectImage, error) {
	exists, err := s.projectRepo.Exists(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if !exists {
		return nil, errors.ErrProjectNotFound
	}

	usable := false
	for _, fh := range files {
		if fh != nil && fh.Filename != "" {
			usable = true
			break
		}
	}
	if !usable {
		return nil, errors.ErrNoFiles
	}

	uploaded := []model.ProjectImage{}
	err = s.imageRepo.WithTransaction(ctx, func(txRepo repository.ImageRepository) error {
		next, err := txRepo.MaxOrder(ctx, projectID)
		if err != nil {
			return fmt.Errorf("max order: %w", err)
		}

		for _, fh := range files {
			if fh == nil || fh.Filename == "" || !storage.AllowedExtension(fh.Filename) {
				continue
			}

			stored := storage.NewStoredName(fh.Filename)
			if err := s.saveUpload(fh, stored); err != nil {
				return err
			}

			if storage.Optimizable(stored) {
				if err := s.store.Optimize(stored); err != nil {
					// non-fatal: keep the original file and the record
					log.Printf("optimize image %s: %v", stored, err)
				}
			}

			next++
			image := model.ProjectImage{
				ProjectID:        projectID,
				Filename:         stored,
				OriginalFilename: storage.SanitizeFilename(fh.Filename),
				SortOrder:        next,
			}
			if err := txRepo.Create(ctx, &image); err != nil {
				return fmt.Errorf("create image record: %w", err)
			}
			uploaded = append(uploaded, image)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, projectCacheKey(projectID))
	_ = s.cache.Delete(ctx, statsCacheKey)
	return uploaded, nil
}

func (s *imageService) saveUpload(fh *multipart.FileHeader, stored string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	if err := s.store.Save(stored, src); err != nil {
		return fmt.Errorf("save upload: %w", err)
	}
	return nil
}

// UpdateMetadata edits alt text and caption; nil fields are left untouched.
func (s *imageService) UpdateMetadata(ctx context.Context, id uint, altText, caption *string) (*model.ProjectImage, error) {
	image, err := s.imageRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrImageNotFound
		}
		return nil, fmt.Errorf("find image: %w", err)
	}

	if altText != nil {
		image.AltText = altText
	}
	if caption != nil {
		image.Caption = caption
	}
	if err := s.imageRepo.Update(ctx, image); err != nil {
		return nil, fmt.Errorf("update image: %w", err)
	}

	_ = s.cache.Delete(ctx, projectCacheKey(image.ProjectID))
	return image, nil
}

// Reorder assigns order = position+1 to each listed image of the project.
// IDs that do not resolve or belong to another project are ignored;
// duplicates are overwritten in iteration order.
func (s *imageService) Reorder(ctx context.Context, projectID string, imageIDs []uint) error {
	exists, err := s.projectRepo.Exists(ctx, projectID)
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	if !exists {
		return errors.ErrProjectNotFound
	}

	err = s.imageRepo.WithTransaction(ctx, func(txRepo repository.ImageRepository) error {
		for index, id := range imageIDs {
			if _, err := txRepo.FindByProjectAndID(ctx, projectID, id); err != nil {
				if err == gorm.ErrRecordNotFound {
					continue
				}
				return fmt.Errorf("find image: %w", err)
			}
			if err := txRepo.UpdateOrder(ctx, id, index+1); err != nil {
				return fmt.Errorf("update order: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, projectCacheKey(projectID))
	return nil
}

// Delete removes the file then the record. A failed file removal leaves the
// record in place.
func (s *imageService) Delete(ctx context.Context, id uint) error {
	image, err := s.imageRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrImageNotFound
		}
		return fmt.Errorf("find image: %w", err)
	}

	if err := s.store.Remove(image.Filename); err != nil {
		return fmt.Errorf("remove image file: %w", err)
	}
	if err := s.imageRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	_ = s.cache.Delete(ctx, projectCacheKey(image.ProjectID))
	_ = s.cache.Delete(ctx, statsCacheKey)
	return nil
}
