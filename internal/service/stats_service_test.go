package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/internal/store"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

func TestStatsServiceCountsLiveRecords(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mem := store.NewMemory(clock.Fixed{Instant: now})
	svc := NewStatsService(mem, nil, nil)
	ctx := context.Background()

	active := &models.Project{Name: "Depot", Status: models.ProjectStatusActive, Type: models.ProjectTypeBuilding}
	require.NoError(t, mem.CreateProject(ctx, active))
	done := &models.Project{Name: "Yard", Status: models.ProjectStatusComplete, Type: models.ProjectTypeBuilding}
	require.NoError(t, mem.CreateProject(ctx, done))

	require.NoError(t, mem.CreatePhoto(ctx, &models.Photo{ProjectID: active.ID, Filename: "p.jpg", TakenAt: now}))
	require.NoError(t, mem.CreateDocument(ctx, &models.Document{ProjectID: active.ID, Filename: "d.pdf", OriginalName: "d.pdf", Type: models.DocumentTypeReport, UploadedAt: now}))

	pending := &models.Reminder{ProjectID: active.ID, Title: "pending", Type: models.ReminderType599, ScheduledFor: now}
	require.NoError(t, mem.CreateReminder(ctx, pending))
	completed := &models.Reminder{ProjectID: active.ID, Title: "done", Type: models.ReminderType599, ScheduledFor: now}
	require.NoError(t, mem.CreateReminder(ctx, completed))
	_, err := mem.CompleteReminder(ctx, completed.ID)
	require.NoError(t, err)

	stats, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.PhotosCount)
	assert.Equal(t, 1, stats.DocumentsCount)
	assert.Equal(t, 1, stats.PendingInspections)
}

func TestStatsServiceReflectsCascadeDelete(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mem := store.NewMemory(clock.Fixed{Instant: now})
	svc := NewStatsService(mem, nil, nil)
	ctx := context.Background()

	project := &models.Project{Name: "Depot", Status: models.ProjectStatusActive, Type: models.ProjectTypeBuilding}
	require.NoError(t, mem.CreateProject(ctx, project))
	require.NoError(t, mem.CreatePhoto(ctx, &models.Photo{ProjectID: project.ID, Filename: "p.jpg", TakenAt: now}))
	require.NoError(t, mem.CreateReminder(ctx, &models.Reminder{ProjectID: project.ID, Title: "r", Type: models.ReminderType599, ScheduledFor: now}))

	require.NoError(t, mem.DeleteProject(ctx, project.ID))

	stats, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.ActiveProjects)
	assert.Zero(t, stats.PhotosCount)
	assert.Zero(t, stats.PendingInspections)
}

type memoryCacheRepo struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	m.gets++
	if _, ok := m.entries[key]; !ok {
		return appErrors.ErrCacheMiss
	}
	stats, ok := dest.(*models.Stats)
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*stats = models.Stats{ActiveProjects: 42}
	return nil
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	m.sets++
	m.entries[key] = []byte("cached")
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	m.entries = map[string][]byte{}
	return nil
}

func TestStatsServiceServesFromCache(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mem := store.NewMemory(clock.Fixed{Instant: now})
	repo := newMemoryCacheRepo()
	cache := NewCacheService(repo, nil, time.Minute, nil, true)
	svc := NewStatsService(mem, cache, nil)
	ctx := context.Background()

	// First call misses and populates the cache.
	first, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, first.ActiveProjects)
	assert.Equal(t, 1, repo.sets)

	// Second call is served from the cache.
	second, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, second.ActiveProjects)

	// Invalidation forces a recompute.
	svc.InvalidateCache(ctx)
	third, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, third.ActiveProjects)
}
