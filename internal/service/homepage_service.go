package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"portfolio/internal/cache"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	homepageCacheTTL = 5 * time.Minute
	homepageCacheKey = "homepage"
)

// HomepageService manages the singleton landing page record.
type HomepageService interface {
	Get(ctx context.Context) (*model.HomePage, error)
	// Update creates the singleton if absent and applies the non-nil fields
	// of the patch. No field is required or validated; the *_json columns
	// store whatever text they are given.
	Update(ctx context.Context, patch *model.HomePage) (*model.HomePage, error)
}

type homepageService struct {
	repo  repository.HomepageRepository
	cache *cache.Client
}

// NewHomepageService builds a HomepageService.
func NewHomepageService(repo repository.HomepageRepository, cache *cache.Client) HomepageService {
	return &homepageService{repo: repo, cache: cache}
}

// Get returns the homepage content.
func (s *homepageService) Get(ctx context.Context) (*model.HomePage, error) {
	if data, _ := s.cache.Get(ctx, homepageCacheKey); data != nil {
		var cached model.HomePage
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	page, err := s.repo.First(ctx)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrHomepageNotFound
		}
		return nil, fmt.Errorf("load homepage: %w", err)
	}

	if payload, err := json.Marshal(page); err == nil {
		_ = s.cache.Set(ctx, homepageCacheKey, payload, homepageCacheTTL)
	}
	return page, nil
}

// Update upserts the singleton row.
func (s *homepageService) Update(ctx context.Context, patch *model.HomePage) (*model.HomePage, error) {
	page, err := s.repo.First(ctx)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("load homepage: %w", err)
		}
		page = &model.HomePage{}
		if err := s.repo.Create(ctx, page); err != nil {
			return nil, fmt.Errorf("create homepage: %w", err)
		}
	}

	applyHomepagePatch(page, patch)
	if err := s.repo.Save(ctx, page); err != nil {
		return nil, fmt.Errorf("save homepage: %w", err)
	}

	_ = s.cache.Delete(ctx, homepageCacheKey)
	return page, nil
}

func applyHomepagePatch(page, patch *model.HomePage) {
	if patch.LogoURL != nil {
		page.LogoURL = patch.LogoURL
	}
	if patch.NavLinksJSON != nil {
		page.NavLinksJSON = patch.NavLinksJSON
	}
	if patch.MainTitle != nil {
		page.MainTitle = patch.MainTitle
	}
	if patch.Slogan != nil {
		page.Slogan = patch.Slogan
	}
	if patch.RotatingKeywordsJSON != nil {
		page.RotatingKeywordsJSON = patch.RotatingKeywordsJSON
	}
	if patch.NascidoEmSPTitle != nil {
		page.NascidoEmSPTitle = patch.NascidoEmSPTitle
	}
	if patch.NascidoEmSPQuote != nil {
		page.NascidoEmSPQuote = patch.NascidoEmSPQuote
	}
	if patch.BestPracticesTitle != nil {
		page.BestPracticesTitle = patch.BestPracticesTitle
	}
	if patch.EmotionDrivenTitle != nil {
		page.EmotionDrivenTitle = patch.EmotionDrivenTitle
	}
	if patch.ServicesJSON != nil {
		page.ServicesJSON = patch.ServicesJSON
	}
	if patch.GoodAtTitle != nil {
		page.GoodAtTitle = patch.GoodAtTitle
	}
	if patch.GoodAtIntro != nil {
		page.GoodAtIntro = patch.GoodAtIntro
	}
	if patch.ClientsJSON != nil {
		page.ClientsJSON = patch.ClientsJSON
	}
	if patch.PartnersTitle != nil {
		page.PartnersTitle = patch.PartnersTitle
	}
	if patch.PartnersJSON != nil {
		page.PartnersJSON = patch.PartnersJSON
	}
	if patch.CTATitle != nil {
		page.CTATitle = patch.CTATitle
	}
	if patch.CTASubtitle != nil {
		page.CTASubtitle = patch.CTASubtitle
	}
	if patch.CTAButtonText != nil {
		page.CTAButtonText = patch.CTAButtonText
	}
	if patch.HeaderBgColor != nil {
		page.HeaderBgColor = patch.HeaderBgColor
	}
	if patch.Section1BgImageURL != nil {
		page.Section1BgImageURL = patch.Section1BgImageURL
	}
}
