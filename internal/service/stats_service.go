package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/repository"
)

const (
	statsCacheTTL = time.Minute
	statsCacheKey = "stats"
)

// Stats holds aggregate portfolio counts.
type Stats struct {
	TotalProjects     int64 `json:"total_projects"`
	PublishedProjects int64 `json:"published_projects"`
	TotalImages       int64 `json:"total_images"`
	UniqueClients     int64 `json:"unique_clients"`
	UniqueAgencies    int64 `json:"unique_agencies"`
}

// StatsService computes aggregate counts for the public stats endpoint.
type StatsService interface {
	Get(ctx context.Context) (*Stats, error)
}

type statsService struct {
	projectRepo repository.ProjectRepository
	imageRepo   repository.ImageRepository
	cache       *cache.Client
}

// NewStatsService builds a StatsService.
func NewStatsService(projectRepo repository.ProjectRepository, imageRepo repository.ImageRepository, cache *cache.Client) StatsService {
	return &statsService{
		projectRepo: projectRepo,
		imageRepo:   imageRepo,
		cache:       cache,
	}
}

// Get returns the current counts, cached briefly.
func (s *statsService) Get(ctx context.Context) (*Stats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached Stats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &Stats{}
	var err error
	if stats.TotalProjects, err = s.projectRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if stats.PublishedProjects, err = s.projectRepo.CountPublished(ctx); err != nil {
		return nil, fmt.Errorf("count published: %w", err)
	}
	if stats.TotalImages, err = s.imageRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count images: %w", err)
	}
	if stats.UniqueClients, err = s.projectRepo.CountDistinctClients(ctx); err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}
	if stats.UniqueAgencies, err = s.projectRepo.CountDistinctAgencies(ctx); err != nil {
		return nil, fmt.Errorf("count agencies: %w", err)
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}
