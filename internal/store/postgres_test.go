package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

func newPostgresMock(t *testing.T) (*Postgres, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewPostgres(sqlx.NewDb(db, "sqlmock"), clock.Fixed{Instant: now})
	return store, mock, func() { db.Close() }
}

func TestPostgresCreateProject(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO projects").
		WithArgs(sqlmock.AnyArg(), "Depot Rebuild", "", "Yard 4", "active", "building", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	project := &models.Project{
		Name:     "Depot Rebuild",
		Location: "Yard 4",
		Status:   models.ProjectStatusActive,
		Type:     models.ProjectTypeBuilding,
	}
	require.NoError(t, store.CreateProject(context.Background(), project))
	assert.NotEmpty(t, project.ID)
	assert.False(t, project.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetProjectNotFound(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, location, status, type, created_at, updated_at FROM projects WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.GetProject(context.Background(), "missing")
	assert.True(t, appErrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateProjectPartial(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "description", "location", "status", "type", "created_at", "updated_at"}).
		AddRow("p1", "Depot Rebuild", "updated", "Yard 4", "active", "building", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE projects SET description = $1, updated_at = $2 WHERE id = $3 RETURNING id, name, description, location, status, type, created_at, updated_at")).
		WithArgs("updated", sqlmock.AnyArg(), "p1").
		WillReturnRows(rows)

	desc := "updated"
	project, err := store.UpdateProject(context.Background(), "p1", models.ProjectUpdate{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "updated", project.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteProjectCascade(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectBegin()
	for _, table := range []string{"photos", "documents", "test_results", "reminders", "calendar_events"} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM "+table+" WHERE project_id = $1")).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 2))
	}
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE id = $1")).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.DeleteProject(context.Background(), "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteProjectMissingRollsBack(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectBegin()
	for _, table := range []string{"photos", "documents", "test_results", "reminders", "calendar_events"} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM "+table+" WHERE project_id = $1")).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.DeleteProject(context.Background(), "missing")
	assert.True(t, appErrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCompleteReminder(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "project_id", "title", "type", "scheduled_for", "completed", "created_at"}).
		AddRow("r1", "p1", "599 inspection", "599", now, true, now)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reminders SET completed = TRUE WHERE id = $1 RETURNING")).
		WithArgs("r1").
		WillReturnRows(rows)

	reminder, err := store.CompleteReminder(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, reminder.Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListCalendarEventsByMonth(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "project_id", "title", "description", "date", "type", "created_at"}).
		AddRow("e1", "p1", "walkthrough", "", now, "visit", now)
	mock.ExpectQuery(regexp.QuoteMeta("EXTRACT(MONTH FROM date AT TIME ZONE 'UTC') = $1 AND EXTRACT(YEAR FROM date AT TIME ZONE 'UTC') = $2 ORDER BY date, id")).
		WithArgs(6, 2024).
		WillReturnRows(rows)

	month, year := 6, 2024
	events, err := store.ListCalendarEvents(context.Background(), models.CalendarFilter{Month: &month, Year: &year})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "walkthrough", events[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPhotoCountsByProject(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"project_id", "count"}).
		AddRow("p1", 3).
		AddRow("p2", 1)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT project_id, COUNT(*) AS count FROM photos GROUP BY project_id")).
		WillReturnRows(rows)

	counts, err := store.PhotoCountsByProject(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"p1": 3, "p2": 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProjectExists(t *testing.T) {
	store, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM projects WHERE id = $1 LIMIT 1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM projects WHERE id = $1 LIMIT 1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	exists, err := store.ProjectExists(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ProjectExists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
