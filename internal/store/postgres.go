package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/pkg/clock"
)

// Postgres is the swappable persistent Store backed by sqlx. The
// project-delete cascade runs inside a single transaction so a failed
// step rolls the whole operation back.
type Postgres struct {
	db    *sqlx.DB
	clock clock.Clock
}

// NewPostgres wraps an sqlx handle in a Store.
func NewPostgres(db *sqlx.DB, clk clock.Clock) *Postgres {
	if clk == nil {
		clk = clock.New()
	}
	return &Postgres{db: db, clock: clk}
}

var _ Store = (*Postgres)(nil)

func mapRowErr(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(message)
	}
	return err
}

// Projects

const projectColumns = "id, name, description, location, status, type, created_at, updated_at"

func (s *Postgres) CreateProject(ctx context.Context, project *models.Project) error {
	now := s.clock.Now()
	project.ID = uuid.NewString()
	project.CreatedAt = now
	project.UpdatedAt = now
	const query = `INSERT INTO projects (id, name, description, location, status, type, created_at, updated_at)
VALUES (:id, :name, :description, :location, :status, :type, :created_at, :updated_at)`
	if _, err := s.db.NamedExecContext(ctx, query, project); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *Postgres) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id = $1", projectColumns)
	if err := s.db.GetContext(ctx, &project, query, id); err != nil {
		return nil, mapRowErr(err, "project not found")
	}
	return &project, nil
}

func (s *Postgres) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (*models.Project, error) {
	sets := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if update.Name != nil {
		addSet("name", *update.Name)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.Location != nil {
		addSet("location", *update.Location)
	}
	if update.Status != nil {
		addSet("status", *update.Status)
	}
	if update.Type != nil {
		addSet("type", *update.Type)
	}
	addSet("updated_at", s.clock.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), projectColumns)
	var project models.Project
	if err := s.db.GetContext(ctx, &project, query, args...); err != nil {
		return nil, mapRowErr(err, "project not found")
	}
	return &project, nil
}

func (s *Postgres) DeleteProject(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cascade: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	dependents := []string{"photos", "documents", "test_results", "reminders", "calendar_events"}
	for _, table := range dependents {
		query := fmt.Sprintf("DELETE FROM %s WHERE project_id = $1", table)
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("cascade %s: %w", table, err)
		}
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if affected == 0 {
		return notFound("project not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cascade: %w", err)
	}
	return nil
}

func (s *Postgres) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects ORDER BY created_at DESC, id", projectColumns)
	projects := []models.Project{}
	if err := s.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *Postgres) ProjectExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.GetContext(ctx, &one, "SELECT 1 FROM projects WHERE id = $1 LIMIT 1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("project exists: %w", err)
	}
	return true, nil
}

// Photos

const photoColumns = "id, project_id, filename, description, latitude, longitude, taken_at, created_at"

func (s *Postgres) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	photo.ID = uuid.NewString()
	photo.CreatedAt = s.clock.Now()
	const query = `INSERT INTO photos (id, project_id, filename, description, latitude, longitude, taken_at, created_at)
VALUES (:id, :project_id, :filename, :description, :latitude, :longitude, :taken_at, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, photo); err != nil {
		return fmt.Errorf("create photo: %w", err)
	}
	return nil
}

func (s *Postgres) GetPhoto(ctx context.Context, id string) (*models.Photo, error) {
	var photo models.Photo
	query := fmt.Sprintf("SELECT %s FROM photos WHERE id = $1", photoColumns)
	if err := s.db.GetContext(ctx, &photo, query, id); err != nil {
		return nil, mapRowErr(err, "photo not found")
	}
	return &photo, nil
}

func (s *Postgres) UpdatePhoto(ctx context.Context, id string, update models.PhotoUpdate) (*models.Photo, error) {
	sets := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.Latitude != nil && update.Longitude != nil {
		addSet("latitude", *update.Latitude)
		addSet("longitude", *update.Longitude)
	}
	if update.TakenAt != nil {
		addSet("taken_at", *update.TakenAt)
	}
	if len(sets) == 0 {
		return s.GetPhoto(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE photos SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), photoColumns)
	var photo models.Photo
	if err := s.db.GetContext(ctx, &photo, query, args...); err != nil {
		return nil, mapRowErr(err, "photo not found")
	}
	return &photo, nil
}

func (s *Postgres) DeletePhoto(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "photos", id, "photo not found")
}

func (s *Postgres) ListPhotos(ctx context.Context, projectID string) ([]models.Photo, error) {
	photos := []models.Photo{}
	if projectID == "" {
		query := fmt.Sprintf("SELECT %s FROM photos ORDER BY taken_at DESC, id", photoColumns)
		if err := s.db.SelectContext(ctx, &photos, query); err != nil {
			return nil, fmt.Errorf("list photos: %w", err)
		}
		return photos, nil
	}
	query := fmt.Sprintf("SELECT %s FROM photos WHERE project_id = $1 ORDER BY taken_at DESC, id", photoColumns)
	if err := s.db.SelectContext(ctx, &photos, query, projectID); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

func (s *Postgres) PhotoCountsByProject(ctx context.Context) (map[string]int, error) {
	return s.countsByProject(ctx, "photos")
}

// Documents

const documentColumns = "id, project_id, filename, original_name, type, size, uploaded_at"

func (s *Postgres) CreateDocument(ctx context.Context, doc *models.Document) error {
	doc.ID = uuid.NewString()
	const query = `INSERT INTO documents (id, project_id, filename, original_name, type, size, uploaded_at)
VALUES (:id, :project_id, :filename, :original_name, :type, :size, :uploaded_at)`
	if _, err := s.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (s *Postgres) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	query := fmt.Sprintf("SELECT %s FROM documents WHERE id = $1", documentColumns)
	if err := s.db.GetContext(ctx, &doc, query, id); err != nil {
		return nil, mapRowErr(err, "document not found")
	}
	return &doc, nil
}

func (s *Postgres) UpdateDocument(ctx context.Context, id string, update models.DocumentUpdate) (*models.Document, error) {
	sets := []string{}
	args := []interface{}{}
	if update.OriginalName != nil {
		sets = append(sets, fmt.Sprintf("original_name = $%d", len(args)+1))
		args = append(args, *update.OriginalName)
	}
	if update.Type != nil {
		sets = append(sets, fmt.Sprintf("type = $%d", len(args)+1))
		args = append(args, *update.Type)
	}
	if len(sets) == 0 {
		return s.GetDocument(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE documents SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), documentColumns)
	var doc models.Document
	if err := s.db.GetContext(ctx, &doc, query, args...); err != nil {
		return nil, mapRowErr(err, "document not found")
	}
	return &doc, nil
}

func (s *Postgres) DeleteDocument(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "documents", id, "document not found")
}

func (s *Postgres) ListDocuments(ctx context.Context, projectID string) ([]models.Document, error) {
	docs := []models.Document{}
	if projectID == "" {
		query := fmt.Sprintf("SELECT %s FROM documents ORDER BY uploaded_at DESC, id", documentColumns)
		if err := s.db.SelectContext(ctx, &docs, query); err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		return docs, nil
	}
	query := fmt.Sprintf("SELECT %s FROM documents WHERE project_id = $1 ORDER BY uploaded_at DESC, id", documentColumns)
	if err := s.db.SelectContext(ctx, &docs, query, projectID); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *Postgres) DocumentCountsByProject(ctx context.Context) (map[string]int, error) {
	return s.countsByProject(ctx, "documents")
}

// Material tests

const materialTestColumns = "id, name, category, specification, created_at, updated_at"

func (s *Postgres) CreateMaterialTest(ctx context.Context, test *models.MaterialTest) error {
	now := s.clock.Now()
	test.ID = uuid.NewString()
	test.CreatedAt = now
	test.UpdatedAt = now
	const query = `INSERT INTO material_tests (id, name, category, specification, created_at, updated_at)
VALUES (:id, :name, :category, :specification, :created_at, :updated_at)`
	if _, err := s.db.NamedExecContext(ctx, query, test); err != nil {
		return fmt.Errorf("create material test: %w", err)
	}
	return nil
}

func (s *Postgres) GetMaterialTest(ctx context.Context, id string) (*models.MaterialTest, error) {
	var test models.MaterialTest
	query := fmt.Sprintf("SELECT %s FROM material_tests WHERE id = $1", materialTestColumns)
	if err := s.db.GetContext(ctx, &test, query, id); err != nil {
		return nil, mapRowErr(err, "material test not found")
	}
	return &test, nil
}

func (s *Postgres) UpdateMaterialTest(ctx context.Context, id string, update models.MaterialTestUpdate) (*models.MaterialTest, error) {
	sets := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if update.Name != nil {
		addSet("name", *update.Name)
	}
	if update.Category != nil {
		addSet("category", *update.Category)
	}
	if update.Specification != nil {
		addSet("specification", *update.Specification)
	}
	addSet("updated_at", s.clock.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE material_tests SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), materialTestColumns)
	var test models.MaterialTest
	if err := s.db.GetContext(ctx, &test, query, args...); err != nil {
		return nil, mapRowErr(err, "material test not found")
	}
	return &test, nil
}

func (s *Postgres) DeleteMaterialTest(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "material_tests", id, "material test not found")
}

func (s *Postgres) ListMaterialTests(ctx context.Context, category models.MaterialCategory) ([]models.MaterialTest, error) {
	tests := []models.MaterialTest{}
	if category == "" {
		query := fmt.Sprintf("SELECT %s FROM material_tests ORDER BY name, id", materialTestColumns)
		if err := s.db.SelectContext(ctx, &tests, query); err != nil {
			return nil, fmt.Errorf("list material tests: %w", err)
		}
		return tests, nil
	}
	query := fmt.Sprintf("SELECT %s FROM material_tests WHERE category = $1 ORDER BY name, id", materialTestColumns)
	if err := s.db.SelectContext(ctx, &tests, query, category); err != nil {
		return nil, fmt.Errorf("list material tests: %w", err)
	}
	return tests, nil
}

func (s *Postgres) MaterialTestExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.GetContext(ctx, &one, "SELECT 1 FROM material_tests WHERE id = $1 LIMIT 1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("material test exists: %w", err)
	}
	return true, nil
}

// Test results

const testResultColumns = "id, project_id, material_test_id, result, status, tested_at, created_at"

func (s *Postgres) CreateTestResult(ctx context.Context, result *models.TestResult) error {
	result.ID = uuid.NewString()
	result.CreatedAt = s.clock.Now()
	const query = `INSERT INTO test_results (id, project_id, material_test_id, result, status, tested_at, created_at)
VALUES (:id, :project_id, :material_test_id, :result, :status, :tested_at, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("create test result: %w", err)
	}
	return nil
}

func (s *Postgres) GetTestResult(ctx context.Context, id string) (*models.TestResult, error) {
	var result models.TestResult
	query := fmt.Sprintf("SELECT %s FROM test_results WHERE id = $1", testResultColumns)
	if err := s.db.GetContext(ctx, &result, query, id); err != nil {
		return nil, mapRowErr(err, "test result not found")
	}
	return &result, nil
}

func (s *Postgres) DeleteTestResult(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "test_results", id, "test result not found")
}

func (s *Postgres) ListTestResults(ctx context.Context, projectID string) ([]models.TestResult, error) {
	results := []models.TestResult{}
	if projectID == "" {
		query := fmt.Sprintf("SELECT %s FROM test_results ORDER BY tested_at DESC, id", testResultColumns)
		if err := s.db.SelectContext(ctx, &results, query); err != nil {
			return nil, fmt.Errorf("list test results: %w", err)
		}
		return results, nil
	}
	query := fmt.Sprintf("SELECT %s FROM test_results WHERE project_id = $1 ORDER BY tested_at DESC, id", testResultColumns)
	if err := s.db.SelectContext(ctx, &results, query, projectID); err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}
	return results, nil
}

// Reminders

const reminderColumns = "id, project_id, title, type, scheduled_for, completed, created_at"

func (s *Postgres) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	reminder.ID = uuid.NewString()
	reminder.CreatedAt = s.clock.Now()
	const query = `INSERT INTO reminders (id, project_id, title, type, scheduled_for, completed, created_at)
VALUES (:id, :project_id, :title, :type, :scheduled_for, :completed, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, reminder); err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

func (s *Postgres) GetReminder(ctx context.Context, id string) (*models.Reminder, error) {
	var reminder models.Reminder
	query := fmt.Sprintf("SELECT %s FROM reminders WHERE id = $1", reminderColumns)
	if err := s.db.GetContext(ctx, &reminder, query, id); err != nil {
		return nil, mapRowErr(err, "reminder not found")
	}
	return &reminder, nil
}

func (s *Postgres) UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (*models.Reminder, error) {
	sets := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if update.Title != nil {
		addSet("title", *update.Title)
	}
	if update.Type != nil {
		addSet("type", *update.Type)
	}
	if update.ScheduledFor != nil {
		addSet("scheduled_for", *update.ScheduledFor)
	}
	if len(sets) == 0 {
		return s.GetReminder(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE reminders SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), reminderColumns)
	var reminder models.Reminder
	if err := s.db.GetContext(ctx, &reminder, query, args...); err != nil {
		return nil, mapRowErr(err, "reminder not found")
	}
	return &reminder, nil
}

func (s *Postgres) DeleteReminder(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "reminders", id, "reminder not found")
}

func (s *Postgres) ListReminders(ctx context.Context, projectID string) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	if projectID == "" {
		query := fmt.Sprintf("SELECT %s FROM reminders ORDER BY scheduled_for, created_at, id", reminderColumns)
		if err := s.db.SelectContext(ctx, &reminders, query); err != nil {
			return nil, fmt.Errorf("list reminders: %w", err)
		}
		return reminders, nil
	}
	query := fmt.Sprintf("SELECT %s FROM reminders WHERE project_id = $1 ORDER BY scheduled_for, created_at, id", reminderColumns)
	if err := s.db.SelectContext(ctx, &reminders, query, projectID); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

func (s *Postgres) ListActiveReminders(ctx context.Context) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	query := fmt.Sprintf("SELECT %s FROM reminders WHERE completed = FALSE ORDER BY scheduled_for, created_at, id", reminderColumns)
	if err := s.db.SelectContext(ctx, &reminders, query); err != nil {
		return nil, fmt.Errorf("list active reminders: %w", err)
	}
	return reminders, nil
}

func (s *Postgres) CompleteReminder(ctx context.Context, id string) (*models.Reminder, error) {
	query := fmt.Sprintf("UPDATE reminders SET completed = TRUE WHERE id = $1 RETURNING %s", reminderColumns)
	var reminder models.Reminder
	if err := s.db.GetContext(ctx, &reminder, query, id); err != nil {
		return nil, mapRowErr(err, "reminder not found")
	}
	return &reminder, nil
}

// Calendar events

const calendarEventColumns = "id, project_id, title, description, date, type, created_at"

func (s *Postgres) CreateCalendarEvent(ctx context.Context, event *models.CalendarEvent) error {
	event.ID = uuid.NewString()
	event.CreatedAt = s.clock.Now()
	const query = `INSERT INTO calendar_events (id, project_id, title, description, date, type, created_at)
VALUES (:id, :project_id, :title, :description, :date, :type, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create calendar event: %w", err)
	}
	return nil
}

func (s *Postgres) GetCalendarEvent(ctx context.Context, id string) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	query := fmt.Sprintf("SELECT %s FROM calendar_events WHERE id = $1", calendarEventColumns)
	if err := s.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, mapRowErr(err, "calendar event not found")
	}
	return &event, nil
}

func (s *Postgres) UpdateCalendarEvent(ctx context.Context, id string, update models.CalendarEventUpdate) (*models.CalendarEvent, error) {
	sets := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if update.Title != nil {
		addSet("title", *update.Title)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.Date != nil {
		addSet("date", *update.Date)
	}
	if update.Type != nil {
		addSet("type", *update.Type)
	}
	if len(sets) == 0 {
		return s.GetCalendarEvent(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE calendar_events SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), calendarEventColumns)
	var event models.CalendarEvent
	if err := s.db.GetContext(ctx, &event, query, args...); err != nil {
		return nil, mapRowErr(err, "calendar event not found")
	}
	return &event, nil
}

func (s *Postgres) DeleteCalendarEvent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "calendar_events", id, "calendar event not found")
}

func (s *Postgres) ListCalendarEvents(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	base := fmt.Sprintf("SELECT %s FROM calendar_events WHERE 1=1", calendarEventColumns)
	conditions := []string{}
	args := []interface{}{}
	if filter.ProjectID != "" {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", len(args)+1))
		args = append(args, filter.ProjectID)
	}
	if filter.Month != nil && filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM date AT TIME ZONE 'UTC') = $%d", len(args)+1))
		args = append(args, *filter.Month)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM date AT TIME ZONE 'UTC') = $%d", len(args)+1))
		args = append(args, *filter.Year)
	}
	query := base
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date, id"

	events := []models.CalendarEvent{}
	if err := s.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	return events, nil
}

// Stats

func (s *Postgres) CountProjectsByStatus(ctx context.Context, status models.ProjectStatus) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM projects WHERE status = $1", status); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

func (s *Postgres) CountPhotos(ctx context.Context) (int, error) {
	return s.countAll(ctx, "photos")
}

func (s *Postgres) CountDocuments(ctx context.Context) (int, error) {
	return s.countAll(ctx, "documents")
}

func (s *Postgres) CountPendingReminders(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM reminders WHERE completed = FALSE"); err != nil {
		return 0, fmt.Errorf("count pending reminders: %w", err)
	}
	return count, nil
}

// helpers

func (s *Postgres) deleteByID(ctx context.Context, table, id, message string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if affected == 0 {
		return notFound(message)
	}
	return nil
}

func (s *Postgres) countAll(ctx context.Context, table string) (int, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := s.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

func (s *Postgres) countsByProject(ctx context.Context, table string) (map[string]int, error) {
	rows := []struct {
		ProjectID string `db:"project_id"`
		Count     int    `db:"count"`
	}{}
	query := fmt.Sprintf("SELECT project_id, COUNT(*) AS count FROM %s GROUP BY project_id", table)
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count %s by project: %w", table, err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ProjectID] = row.Count
	}
	return counts, nil
}
