package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/internal/models"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

const statsCacheKey = "stats:dashboard"

type statsStore interface {
	CountProjectsByStatus(ctx context.Context, status models.ProjectStatus) (int, error)
	CountPhotos(ctx context.Context) (int, error)
	CountDocuments(ctx context.Context) (int, error)
	CountPendingReminders(ctx context.Context) (int, error)
}

// StatsService aggregates whole-system counters for the dashboard.
type StatsService struct {
	store  statsStore
	cache  *CacheService
	logger *zap.Logger
}

// NewStatsService constructs the service. cache may be nil, in which
// case every call recomputes from the store.
func NewStatsService(store statsStore, cache *CacheService, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{store: store, cache: cache, logger: logger}
}

// Get returns the current counters. Counts are recomputed from the
// store so they always reflect the live record set, optionally served
// from a short-lived cache.
func (s *StatsService) Get(ctx context.Context) (*models.Stats, error) {
	if s.cache.Enabled() {
		var cached models.Stats
		if hit, err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	active, err := s.store.CountProjectsByStatus(ctx, models.ProjectStatusActive)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count active projects")
	}
	photos, err := s.store.CountPhotos(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count photos")
	}
	documents, err := s.store.CountDocuments(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count documents")
	}
	pending, err := s.store.CountPendingReminders(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count pending reminders")
	}

	stats := &models.Stats{
		ActiveProjects:     active,
		PhotosCount:        photos,
		PendingInspections: pending,
		DocumentsCount:     documents,
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, statsCacheKey, stats, 0); err != nil {
			s.logger.Warn("failed to cache stats", zap.Error(err))
		}
	}
	return stats, nil
}

// InvalidateCache drops the cached counters after a write.
func (s *StatsService) InvalidateCache(ctx context.Context) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Invalidate(ctx, statsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}
}
