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

func newReminderFixture(t *testing.T, now time.Time) (*ReminderService, *models.Project) {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory(clock.Fixed{Instant: now})
	project := &models.Project{Name: "Depot", Status: models.ProjectStatusActive, Type: models.ProjectTypeBuilding}
	require.NoError(t, mem.CreateProject(ctx, project))
	return NewReminderService(mem, nil, nil), project
}

func TestReminderServiceCreateStartsPending(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, project := newReminderFixture(t, now)

	reminder, err := svc.Create(context.Background(), CreateReminderRequest{
		ProjectID:    project.ID,
		Title:        "599 inspection",
		Type:         "599",
		ScheduledFor: now.AddDate(0, 0, 3),
	})
	require.NoError(t, err)
	assert.False(t, reminder.Completed)
}

func TestReminderServiceCreateRejectsMissingProject(t *testing.T) {
	now := time.Now()
	svc, _ := newReminderFixture(t, now)

	_, err := svc.Create(context.Background(), CreateReminderRequest{
		ProjectID:    "no-such-project",
		Title:        "599 inspection",
		Type:         "599",
		ScheduledFor: now,
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrIntegrity.Code, appErr.Code)
}

func TestReminderServiceCompleteIsIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, project := newReminderFixture(t, now)
	ctx := context.Background()

	reminder, err := svc.Create(ctx, CreateReminderRequest{
		ProjectID:    project.ID,
		Title:        "sw3p walkthrough",
		Type:         "sw3p",
		ScheduledFor: now.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	first, err := svc.Complete(ctx, reminder.ID)
	require.NoError(t, err)
	assert.True(t, first.Completed)

	second, err := svc.Complete(ctx, reminder.ID)
	require.NoError(t, err)
	assert.True(t, second.Completed)
}

func TestReminderServiceCompleteMissingIsNotFound(t *testing.T) {
	svc, _ := newReminderFixture(t, time.Now())

	_, err := svc.Complete(context.Background(), "missing")
	assert.True(t, appErrors.IsNotFound(err))
}

func TestReminderServiceUpdateCannotReopen(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, project := newReminderFixture(t, now)
	ctx := context.Background()

	reminder, err := svc.Create(ctx, CreateReminderRequest{
		ProjectID:    project.ID,
		Title:        "concrete cubes",
		Type:         "material_test",
		ScheduledFor: now.AddDate(0, 0, 2),
	})
	require.NoError(t, err)
	_, err = svc.Complete(ctx, reminder.ID)
	require.NoError(t, err)

	title := "concrete cubes, batch 2"
	updated, err := svc.Update(ctx, reminder.ID, UpdateReminderRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.True(t, updated.Completed)
}

func TestReminderServiceListActiveExcludesCompleted(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, project := newReminderFixture(t, now)
	ctx := context.Background()

	done, err := svc.Create(ctx, CreateReminderRequest{
		ProjectID: project.ID, Title: "done", Type: "599", ScheduledFor: now.Add(time.Hour),
	})
	require.NoError(t, err)
	pending, err := svc.Create(ctx, CreateReminderRequest{
		ProjectID: project.ID, Title: "pending", Type: "599", ScheduledFor: now.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Complete(ctx, done.ID)
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, pending.ID, active[0].ID)
}
