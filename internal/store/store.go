// Package store defines the entity store contract and its backends.
// The store owns identity generation and raw persistence; validation
// and derivation live in the service layer.
package store

import (
	"context"

	"github.com/sitelog/sitelog-api/internal/models"
)

// Store is the single source of truth for all entities. Implementations
// must serialize operations on the same entity, generate opaque unique
// ids on create, and make project deletion cascade atomically across
// all dependent records.
//
// Missing ids surface as pkg/errors.ErrNotFound.
type Store interface {
	ProjectStore
	PhotoStore
	DocumentStore
	MaterialTestStore
	TestResultStore
	ReminderStore
	CalendarEventStore
	StatsStore
}

// ProjectStore persists the aggregate root.
type ProjectStore interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (*models.Project, error)
	// DeleteProject removes the project and every photo, document,
	// test result, reminder and calendar event referencing it. The
	// cascade is all-or-nothing: no partial deletion is observable.
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]models.Project, error)
	ProjectExists(ctx context.Context, id string) (bool, error)
}

// PhotoStore persists photo metadata.
type PhotoStore interface {
	CreatePhoto(ctx context.Context, photo *models.Photo) error
	GetPhoto(ctx context.Context, id string) (*models.Photo, error)
	UpdatePhoto(ctx context.Context, id string, update models.PhotoUpdate) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
	// ListPhotos returns photos for one project, or all when projectID
	// is empty.
	ListPhotos(ctx context.Context, projectID string) ([]models.Photo, error)
	PhotoCountsByProject(ctx context.Context) (map[string]int, error)
}

// DocumentStore persists document metadata.
type DocumentStore interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	UpdateDocument(ctx context.Context, id string, update models.DocumentUpdate) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, projectID string) ([]models.Document, error)
	DocumentCountsByProject(ctx context.Context) (map[string]int, error)
}

// MaterialTestStore persists reusable test specifications.
type MaterialTestStore interface {
	CreateMaterialTest(ctx context.Context, test *models.MaterialTest) error
	GetMaterialTest(ctx context.Context, id string) (*models.MaterialTest, error)
	UpdateMaterialTest(ctx context.Context, id string, update models.MaterialTestUpdate) (*models.MaterialTest, error)
	DeleteMaterialTest(ctx context.Context, id string) error
	// ListMaterialTests filters by exact category when category is
	// non-empty.
	ListMaterialTests(ctx context.Context, category models.MaterialCategory) ([]models.MaterialTest, error)
	MaterialTestExists(ctx context.Context, id string) (bool, error)
}

// TestResultStore persists performed test results.
type TestResultStore interface {
	CreateTestResult(ctx context.Context, result *models.TestResult) error
	GetTestResult(ctx context.Context, id string) (*models.TestResult, error)
	DeleteTestResult(ctx context.Context, id string) error
	ListTestResults(ctx context.Context, projectID string) ([]models.TestResult, error)
}

// ReminderStore persists inspection reminders.
type ReminderStore interface {
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	GetReminder(ctx context.Context, id string) (*models.Reminder, error)
	UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
	ListReminders(ctx context.Context, projectID string) ([]models.Reminder, error)
	// ListActiveReminders returns incomplete reminders ordered by
	// scheduled time ascending, created time then id as tie-breaks.
	ListActiveReminders(ctx context.Context) ([]models.Reminder, error)
	// CompleteReminder marks the reminder done. Completing an already
	// completed reminder succeeds and changes nothing.
	CompleteReminder(ctx context.Context, id string) (*models.Reminder, error)
}

// CalendarEventStore persists project calendar entries.
type CalendarEventStore interface {
	CreateCalendarEvent(ctx context.Context, event *models.CalendarEvent) error
	GetCalendarEvent(ctx context.Context, id string) (*models.CalendarEvent, error)
	UpdateCalendarEvent(ctx context.Context, id string, update models.CalendarEventUpdate) (*models.CalendarEvent, error)
	DeleteCalendarEvent(ctx context.Context, id string) error
	ListCalendarEvents(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
}

// StatsStore exposes the counters the stats aggregator reads.
type StatsStore interface {
	CountProjectsByStatus(ctx context.Context, status models.ProjectStatus) (int, error)
	CountPhotos(ctx context.Context) (int, error)
	CountDocuments(ctx context.Context) (int, error)
	CountPendingReminders(ctx context.Context) (int, error)
}
