package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

// Memory is the canonical in-memory Store. A single RWMutex guards all
// collections: individual operations hold the write lock briefly, and
// the project-delete cascade runs entirely inside it, so no reader ever
// observes a partially deleted project.
type Memory struct {
	mu    sync.RWMutex
	clock clock.Clock

	projects      map[string]models.Project
	photos        map[string]models.Photo
	documents     map[string]models.Document
	materialTests map[string]models.MaterialTest
	testResults   map[string]models.TestResult
	reminders     map[string]models.Reminder
	events        map[string]models.CalendarEvent
}

// NewMemory constructs an empty in-memory store.
func NewMemory(clk clock.Clock) *Memory {
	if clk == nil {
		clk = clock.New()
	}
	return &Memory{
		clock:         clk,
		projects:      make(map[string]models.Project),
		photos:        make(map[string]models.Photo),
		documents:     make(map[string]models.Document),
		materialTests: make(map[string]models.MaterialTest),
		testResults:   make(map[string]models.TestResult),
		reminders:     make(map[string]models.Reminder),
		events:        make(map[string]models.CalendarEvent),
	}
}

var _ Store = (*Memory)(nil)

func notFound(message string) error {
	return appErrors.Clone(appErrors.ErrNotFound, message)
}

// touch returns the current instant, nudged forward when it would not
// advance past prev so UpdatedAt is strictly monotonic per entity.
func (s *Memory) touch(prev time.Time) time.Time {
	now := s.clock.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

// Projects

func (s *Memory) CreateProject(_ context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	project.ID = uuid.NewString()
	project.CreatedAt = now
	project.UpdatedAt = now
	s.projects[project.ID] = *project
	return nil
}

func (s *Memory) GetProject(_ context.Context, id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, notFound("project not found")
	}
	return &project, nil
}

func (s *Memory) UpdateProject(_ context.Context, id string, update models.ProjectUpdate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, notFound("project not found")
	}
	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Location != nil {
		project.Location = *update.Location
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	if update.Type != nil {
		project.Type = *update.Type
	}
	project.UpdatedAt = s.touch(project.UpdatedAt)
	s.projects[id] = project
	return &project, nil
}

func (s *Memory) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return notFound("project not found")
	}
	for photoID, photo := range s.photos {
		if photo.ProjectID == id {
			delete(s.photos, photoID)
		}
	}
	for docID, doc := range s.documents {
		if doc.ProjectID == id {
			delete(s.documents, docID)
		}
	}
	for resultID, result := range s.testResults {
		if result.ProjectID == id {
			delete(s.testResults, resultID)
		}
	}
	for reminderID, reminder := range s.reminders {
		if reminder.ProjectID == id {
			delete(s.reminders, reminderID)
		}
	}
	for eventID, event := range s.events {
		if event.ProjectID == id {
			delete(s.events, eventID)
		}
	}
	delete(s.projects, id)
	return nil
}

func (s *Memory) ListProjects(_ context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ID < projects[j].ID
	})
	return projects, nil
}

func (s *Memory) ProjectExists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.projects[id]
	return ok, nil
}

// Photos

func (s *Memory) CreatePhoto(_ context.Context, photo *models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo.ID = uuid.NewString()
	photo.CreatedAt = s.clock.Now()
	s.photos[photo.ID] = *photo
	return nil
}

func (s *Memory) GetPhoto(_ context.Context, id string) (*models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photo, ok := s.photos[id]
	if !ok {
		return nil, notFound("photo not found")
	}
	return &photo, nil
}

func (s *Memory) UpdatePhoto(_ context.Context, id string, update models.PhotoUpdate) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo, ok := s.photos[id]
	if !ok {
		return nil, notFound("photo not found")
	}
	if update.Description != nil {
		photo.Description = *update.Description
	}
	if update.Latitude != nil && update.Longitude != nil {
		photo.Latitude = update.Latitude
		photo.Longitude = update.Longitude
	}
	if update.TakenAt != nil {
		photo.TakenAt = *update.TakenAt
	}
	s.photos[id] = photo
	return &photo, nil
}

func (s *Memory) DeletePhoto(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.photos[id]; !ok {
		return notFound("photo not found")
	}
	delete(s.photos, id)
	return nil
}

func (s *Memory) ListPhotos(_ context.Context, projectID string) ([]models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photos := make([]models.Photo, 0)
	for _, photo := range s.photos {
		if projectID == "" || photo.ProjectID == projectID {
			photos = append(photos, photo)
		}
	}
	sort.Slice(photos, func(i, j int) bool {
		if !photos[i].TakenAt.Equal(photos[j].TakenAt) {
			return photos[i].TakenAt.After(photos[j].TakenAt)
		}
		return photos[i].ID < photos[j].ID
	})
	return photos, nil
}

func (s *Memory) PhotoCountsByProject(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, photo := range s.photos {
		counts[photo.ProjectID]++
	}
	return counts, nil
}

// Documents

func (s *Memory) CreateDocument(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.ID = uuid.NewString()
	s.documents[doc.ID] = *doc
	return nil
}

func (s *Memory) GetDocument(_ context.Context, id string) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, notFound("document not found")
	}
	return &doc, nil
}

func (s *Memory) UpdateDocument(_ context.Context, id string, update models.DocumentUpdate) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, notFound("document not found")
	}
	if update.OriginalName != nil {
		doc.OriginalName = *update.OriginalName
	}
	if update.Type != nil {
		doc.Type = *update.Type
	}
	s.documents[id] = doc
	return &doc, nil
}

func (s *Memory) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return notFound("document not found")
	}
	delete(s.documents, id)
	return nil
}

func (s *Memory) ListDocuments(_ context.Context, projectID string) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]models.Document, 0)
	for _, doc := range s.documents {
		if projectID == "" || doc.ProjectID == projectID {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].UploadedAt.Equal(docs[j].UploadedAt) {
			return docs[i].UploadedAt.After(docs[j].UploadedAt)
		}
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

func (s *Memory) DocumentCountsByProject(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, doc := range s.documents {
		counts[doc.ProjectID]++
	}
	return counts, nil
}

// Material tests

func (s *Memory) CreateMaterialTest(_ context.Context, test *models.MaterialTest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	test.ID = uuid.NewString()
	test.CreatedAt = now
	test.UpdatedAt = now
	s.materialTests[test.ID] = *test
	return nil
}

func (s *Memory) GetMaterialTest(_ context.Context, id string) (*models.MaterialTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	test, ok := s.materialTests[id]
	if !ok {
		return nil, notFound("material test not found")
	}
	return &test, nil
}

func (s *Memory) UpdateMaterialTest(_ context.Context, id string, update models.MaterialTestUpdate) (*models.MaterialTest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	test, ok := s.materialTests[id]
	if !ok {
		return nil, notFound("material test not found")
	}
	if update.Name != nil {
		test.Name = *update.Name
	}
	if update.Category != nil {
		test.Category = *update.Category
	}
	if update.Specification != nil {
		test.Specification = *update.Specification
	}
	test.UpdatedAt = s.touch(test.UpdatedAt)
	s.materialTests[id] = test
	return &test, nil
}

func (s *Memory) DeleteMaterialTest(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.materialTests[id]; !ok {
		return notFound("material test not found")
	}
	delete(s.materialTests, id)
	return nil
}

func (s *Memory) ListMaterialTests(_ context.Context, category models.MaterialCategory) ([]models.MaterialTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tests := make([]models.MaterialTest, 0)
	for _, test := range s.materialTests {
		if category == "" || test.Category == category {
			tests = append(tests, test)
		}
	}
	sort.Slice(tests, func(i, j int) bool {
		if tests[i].Name != tests[j].Name {
			return tests[i].Name < tests[j].Name
		}
		return tests[i].ID < tests[j].ID
	})
	return tests, nil
}

func (s *Memory) MaterialTestExists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.materialTests[id]
	return ok, nil
}

// Test results

func (s *Memory) CreateTestResult(_ context.Context, result *models.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.ID = uuid.NewString()
	result.CreatedAt = s.clock.Now()
	s.testResults[result.ID] = *result
	return nil
}

func (s *Memory) GetTestResult(_ context.Context, id string) (*models.TestResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.testResults[id]
	if !ok {
		return nil, notFound("test result not found")
	}
	return &result, nil
}

func (s *Memory) DeleteTestResult(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.testResults[id]; !ok {
		return notFound("test result not found")
	}
	delete(s.testResults, id)
	return nil
}

func (s *Memory) ListTestResults(_ context.Context, projectID string) ([]models.TestResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.TestResult, 0)
	for _, result := range s.testResults {
		if projectID == "" || result.ProjectID == projectID {
			results = append(results, result)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].TestedAt.Equal(results[j].TestedAt) {
			return results[i].TestedAt.After(results[j].TestedAt)
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// Reminders

func (s *Memory) CreateReminder(_ context.Context, reminder *models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminder.ID = uuid.NewString()
	reminder.CreatedAt = s.clock.Now()
	s.reminders[reminder.ID] = *reminder
	return nil
}

func (s *Memory) GetReminder(_ context.Context, id string) (*models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminder, ok := s.reminders[id]
	if !ok {
		return nil, notFound("reminder not found")
	}
	return &reminder, nil
}

func (s *Memory) UpdateReminder(_ context.Context, id string, update models.ReminderUpdate) (*models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminder, ok := s.reminders[id]
	if !ok {
		return nil, notFound("reminder not found")
	}
	if update.Title != nil {
		reminder.Title = *update.Title
	}
	if update.Type != nil {
		reminder.Type = *update.Type
	}
	if update.ScheduledFor != nil {
		reminder.ScheduledFor = *update.ScheduledFor
	}
	s.reminders[id] = reminder
	return &reminder, nil
}

func (s *Memory) DeleteReminder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reminders[id]; !ok {
		return notFound("reminder not found")
	}
	delete(s.reminders, id)
	return nil
}

func (s *Memory) ListReminders(_ context.Context, projectID string) ([]models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]models.Reminder, 0)
	for _, reminder := range s.reminders {
		if projectID == "" || reminder.ProjectID == projectID {
			reminders = append(reminders, reminder)
		}
	}
	sortReminders(reminders)
	return reminders, nil
}

func (s *Memory) ListActiveReminders(_ context.Context) ([]models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]models.Reminder, 0)
	for _, reminder := range s.reminders {
		if !reminder.Completed {
			reminders = append(reminders, reminder)
		}
	}
	sortReminders(reminders)
	return reminders, nil
}

func (s *Memory) CompleteReminder(_ context.Context, id string) (*models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminder, ok := s.reminders[id]
	if !ok {
		return nil, notFound("reminder not found")
	}
	reminder.Completed = true
	s.reminders[id] = reminder
	return &reminder, nil
}

// sortReminders orders by scheduled time, then creation time, then id,
// so identical schedules still list deterministically.
func sortReminders(reminders []models.Reminder) {
	sort.Slice(reminders, func(i, j int) bool {
		if !reminders[i].ScheduledFor.Equal(reminders[j].ScheduledFor) {
			return reminders[i].ScheduledFor.Before(reminders[j].ScheduledFor)
		}
		if !reminders[i].CreatedAt.Equal(reminders[j].CreatedAt) {
			return reminders[i].CreatedAt.Before(reminders[j].CreatedAt)
		}
		return reminders[i].ID < reminders[j].ID
	})
}

// Calendar events

func (s *Memory) CreateCalendarEvent(_ context.Context, event *models.CalendarEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = uuid.NewString()
	event.CreatedAt = s.clock.Now()
	s.events[event.ID] = *event
	return nil
}

func (s *Memory) GetCalendarEvent(_ context.Context, id string) (*models.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, notFound("calendar event not found")
	}
	return &event, nil
}

func (s *Memory) UpdateCalendarEvent(_ context.Context, id string, update models.CalendarEventUpdate) (*models.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, notFound("calendar event not found")
	}
	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Date != nil {
		event.Date = *update.Date
	}
	if update.Type != nil {
		event.Type = *update.Type
	}
	s.events[id] = event
	return &event, nil
}

func (s *Memory) DeleteCalendarEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return notFound("calendar event not found")
	}
	delete(s.events, id)
	return nil
}

func (s *Memory) ListCalendarEvents(_ context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.CalendarEvent, 0)
	for _, event := range s.events {
		if filter.ProjectID != "" && event.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Month != nil && filter.Year != nil {
			date := event.Date.UTC()
			if int(date.Month()) != *filter.Month || date.Year() != *filter.Year {
				continue
			}
		}
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

// Stats

func (s *Memory) CountProjectsByStatus(_ context.Context, status models.ProjectStatus) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, project := range s.projects {
		if project.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *Memory) CountPhotos(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.photos), nil
}

func (s *Memory) CountDocuments(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.documents), nil
}

func (s *Memory) CountPendingReminders(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, reminder := range s.reminders {
		if !reminder.Completed {
			count++
		}
	}
	return count, nil
}
