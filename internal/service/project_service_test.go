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

func newProjectFixture(t *testing.T, now time.Time) (*ProjectService, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(clock.Fixed{Instant: now})
	return NewProjectService(mem, nil, clock.Fixed{Instant: now}, nil), mem
}

func TestProjectServiceCreateDefaultsStatus(t *testing.T) {
	svc, _ := newProjectFixture(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	project, err := svc.Create(context.Background(), CreateProjectRequest{
		Name: "Riverside Bridge",
		Type: "infrastructure",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusActive, project.Status)
	assert.NotEmpty(t, project.ID)
}

func TestProjectServiceCreateRejectsUnknownType(t *testing.T) {
	svc, _ := newProjectFixture(t, time.Now())

	_, err := svc.Create(context.Background(), CreateProjectRequest{
		Name: "Riverside Bridge",
		Type: "tunnel",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestProjectServiceListDerivesCountsAndNextInspection(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, mem := newProjectFixture(t, now)
	ctx := context.Background()

	project, err := svc.Create(ctx, CreateProjectRequest{Name: "Depot", Type: "building"})
	require.NoError(t, err)
	quiet, err := svc.Create(ctx, CreateProjectRequest{Name: "Yard", Type: "building"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, mem.CreatePhoto(ctx, &models.Photo{ProjectID: project.ID, Filename: "p.jpg", TakenAt: now}))
	}
	require.NoError(t, mem.CreateDocument(ctx, &models.Document{ProjectID: project.ID, Filename: "d.pdf", OriginalName: "d.pdf", Type: models.DocumentTypeDrawing, UploadedAt: now}))

	// The later reminder must not win over the earlier one.
	require.NoError(t, mem.CreateReminder(ctx, &models.Reminder{ProjectID: project.ID, Title: "later", Type: models.ReminderType599, ScheduledFor: now.AddDate(0, 0, 5)}))
	require.NoError(t, mem.CreateReminder(ctx, &models.Reminder{ProjectID: project.ID, Title: "sooner", Type: models.ReminderType599, ScheduledFor: now.Add(3 * time.Hour)}))

	summaries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[string]models.ProjectSummary{}
	for _, s := range summaries {
		byID[s.ID] = s
	}

	busy := byID[project.ID]
	assert.Equal(t, 2, busy.PhotoCount)
	assert.Equal(t, 1, busy.DocumentCount)
	require.NotNil(t, busy.NextInspection)
	assert.Equal(t, "Today", *busy.NextInspection)

	idle := byID[quiet.ID]
	assert.Zero(t, idle.PhotoCount)
	assert.Zero(t, idle.DocumentCount)
	assert.Nil(t, idle.NextInspection)
}

func TestProjectServiceCompletedRemindersDoNotDriveNextInspection(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, mem := newProjectFixture(t, now)
	ctx := context.Background()

	project, err := svc.Create(ctx, CreateProjectRequest{Name: "Depot", Type: "building"})
	require.NoError(t, err)

	reminder := &models.Reminder{ProjectID: project.ID, Title: "done", Type: models.ReminderTypeSW3P, ScheduledFor: now.Add(time.Hour)}
	require.NoError(t, mem.CreateReminder(ctx, reminder))
	_, err = mem.CompleteReminder(ctx, reminder.ID)
	require.NoError(t, err)

	summary, err := svc.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, summary.NextInspection)
}

func TestProjectServiceDeleteMissingIsNotFound(t *testing.T) {
	svc, _ := newProjectFixture(t, time.Now())

	err := svc.Delete(context.Background(), "missing")
	assert.True(t, appErrors.IsNotFound(err))
}

type failingProjectStore struct {
	projectStore
}

func (f *failingProjectStore) DeleteProject(context.Context, string) error {
	return assert.AnError
}

func TestProjectServiceDeleteMapsCascadeFailure(t *testing.T) {
	svc := NewProjectService(&failingProjectStore{}, nil, nil, nil)

	err := svc.Delete(context.Background(), "p1")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrCascadeFailed.Code, appErr.Code)
}

func TestProjectServiceUpdatePartial(t *testing.T) {
	svc, _ := newProjectFixture(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	project, err := svc.Create(ctx, CreateProjectRequest{Name: "Depot", Description: "keep me", Type: "building"})
	require.NoError(t, err)

	status := "review"
	updated, err := svc.Update(ctx, project.ID, UpdateProjectRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusReview, updated.Status)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, "Depot", updated.Name)
}
