package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/internal/service"
	"github.com/sitelog/sitelog-api/internal/store"
	"github.com/sitelog/sitelog-api/pkg/clock"
	"github.com/sitelog/sitelog-api/pkg/storage"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	router *gin.Engine
	store  *store.Memory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory(clock.Fixed{Instant: testNow})
	blobs, err := storage.NewBlobStore(t.TempDir())
	require.NoError(t, err)

	clk := clock.Fixed{Instant: testNow}
	validate := service.NewValidator()

	handlers := Handlers{
		Projects:      NewProjectHandler(service.NewProjectService(mem, validate, clk, nil)),
		Photos:        NewPhotoHandler(service.NewPhotoService(mem, blobs, validate, clk, nil), blobs, 1<<20),
		Documents:     NewDocumentHandler(service.NewDocumentService(mem, blobs, validate, clk, nil), blobs, 1<<20),
		MaterialTests: NewMaterialTestHandler(service.NewMaterialTestService(mem, validate, nil)),
		TestResults:   NewTestResultHandler(service.NewTestResultService(mem, validate, clk, nil)),
		Reminders:     NewReminderHandler(service.NewReminderService(mem, validate, nil)),
		Calendar:      NewCalendarHandler(service.NewCalendarService(mem, validate, nil)),
		Stats:         NewStatsHandler(service.NewStatsService(mem, nil, nil)),
		Reports:       NewReportHandler(service.NewReportService(mem, clk, nil, nil, nil)),
	}

	router := gin.New()
	handlers.Register(router.Group("/api/v1"))
	return &testEnv{router: router, store: mem}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
}

func (e *testEnv) createProject(t *testing.T, name string) models.Project {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/projects", gin.H{"name": name, "type": "building"})
	require.Equal(t, http.StatusCreated, w.Code)
	var project models.Project
	decodeData(t, w, &project)
	return project
}

func TestProjectLifecycle(t *testing.T) {
	env := newTestEnv(t)

	project := env.createProject(t, "Depot")
	assert.Equal(t, models.ProjectStatusActive, project.Status)

	w := env.do(t, http.MethodPut, "/api/v1/projects/"+project.ID, gin.H{"status": "review"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Project
	decodeData(t, w, &updated)
	assert.Equal(t, models.ProjectStatusReview, updated.Status)

	w = env.do(t, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summaries []models.ProjectSummary
	decodeData(t, w, &summaries)
	require.Len(t, summaries, 1)

	w = env.do(t, http.MethodDelete, "/api/v1/projects/"+project.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectCreateValidationError(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/projects", gin.H{"name": "no type"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestPhotoUploadAndDownload(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Depot")

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("file", "slab.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.WriteField("projectId", project.ID))
	require.NoError(t, form.WriteField("description", "slab pour"))
	require.NoError(t, form.WriteField("latitude", "52.1"))
	require.NoError(t, form.WriteField("longitude", "4.3"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photos", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var photo models.Photo
	decodeData(t, w, &photo)
	assert.Equal(t, project.ID, photo.ProjectID)
	require.NotNil(t, photo.Latitude)
	assert.Equal(t, 52.1, *photo.Latitude)

	download := env.do(t, http.MethodGet, "/api/v1/photos/"+photo.ID+"/file", nil)
	require.Equal(t, http.StatusOK, download.Code)
	assert.Equal(t, "jpeg-bytes", download.Body.String())
}

func TestPhotoUploadRejectsUnknownProject(t *testing.T) {
	env := newTestEnv(t)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("file", "slab.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.WriteField("projectId", "no-such-project"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photos", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "FK_VIOLATION")
}

func TestReminderCompleteEndpoint(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Depot")

	w := env.do(t, http.MethodPost, "/api/v1/reminders", gin.H{
		"projectId":    project.ID,
		"title":        "599 inspection",
		"type":         "599",
		"scheduledFor": testNow.AddDate(0, 0, 3).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var reminder models.Reminder
	decodeData(t, w, &reminder)
	assert.False(t, reminder.Completed)

	w = env.do(t, http.MethodPost, "/api/v1/reminders/"+reminder.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &reminder)
	assert.True(t, reminder.Completed)

	// Completing again still succeeds.
	w = env.do(t, http.MethodPost, "/api/v1/reminders/"+reminder.ID+"/complete", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/reminders/missing/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCascadeDeleteThroughAPI(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Depot")
	ctx := context.Background()

	require.NoError(t, env.store.CreatePhoto(ctx, &models.Photo{ProjectID: project.ID, Filename: "p.jpg", TakenAt: testNow}))
	require.NoError(t, env.store.CreateReminder(ctx, &models.Reminder{ProjectID: project.ID, Title: "r", Type: models.ReminderType599, ScheduledFor: testNow}))

	w := env.do(t, http.MethodDelete, "/api/v1/projects/"+project.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/photos?projectId="+project.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var photos []models.Photo
	decodeData(t, w, &photos)
	assert.Empty(t, photos)

	w = env.do(t, http.MethodGet, "/api/v1/reminders?projectId="+project.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reminders []models.Reminder
	decodeData(t, w, &reminders)
	assert.Empty(t, reminders)
}

func TestCalendarMonthFilterEndpoint(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Depot")

	w := env.do(t, http.MethodPost, "/api/v1/calendar-events", gin.H{
		"projectId": project.ID,
		"title":     "in march",
		"date":      "2025-03-20T10:00:00Z",
		"type":      "inspection",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = env.do(t, http.MethodPost, "/api/v1/calendar-events", gin.H{
		"projectId": project.ID,
		"title":     "in april",
		"date":      "2025-04-02T10:00:00Z",
		"type":      "visit",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/calendar-events?month=3&year=2025", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var views []models.CalendarEventView
	decodeData(t, w, &views)
	require.Len(t, views, 1)
	assert.Equal(t, "in march", views[0].Title)
	assert.Equal(t, "Depot", views[0].ProjectName)

	w = env.do(t, http.MethodGet, "/api/v1/calendar-events?month=13&year=2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Depot")
	ctx := context.Background()

	require.NoError(t, env.store.CreatePhoto(ctx, &models.Photo{ProjectID: project.ID, Filename: "p.jpg", TakenAt: testNow}))
	require.NoError(t, env.store.CreateReminder(ctx, &models.Reminder{ProjectID: project.ID, Title: "r", Type: models.ReminderType599, ScheduledFor: testNow}))

	w := env.do(t, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.Stats
	decodeData(t, w, &stats)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.PhotosCount)
	assert.Equal(t, 1, stats.PendingInspections)
	assert.Zero(t, stats.DocumentsCount)
}

func TestProjectReportEndpoint(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Depot")

	w := env.do(t, http.MethodGet, "/api/v1/projects/"+project.ID+"/report?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "Kind,Title,Detail,Status,Date")

	w = env.do(t, http.MethodGet, "/api/v1/projects/"+project.ID+"/report?format=xlsx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestResultEndpointsEnforceReferences(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Depot")

	w := env.do(t, http.MethodPost, "/api/v1/material-tests", gin.H{
		"name":          "Cube strength",
		"category":      "concrete",
		"specification": "EN 12390-3",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var test models.MaterialTest
	decodeData(t, w, &test)

	w = env.do(t, http.MethodPost, "/api/v1/test-results", gin.H{
		"projectId":      project.ID,
		"materialTestId": test.ID,
		"result":         "32.5 MPa",
		"status":         "pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/test-results", gin.H{
		"projectId":      project.ID,
		"materialTestId": "no-such-test",
		"result":         "32.5 MPa",
		"status":         "pass",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/test-results?projectId="+project.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var views []models.TestResultView
	decodeData(t, w, &views)
	require.Len(t, views, 1)
	assert.Equal(t, "Depot", views[0].ProjectName)
	assert.Equal(t, "Cube strength", views[0].TestName)
}

func TestMaterialTestCategoryFilterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/material-tests", gin.H{"name": "Cube strength", "category": "concrete"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = env.do(t, http.MethodPost, "/api/v1/material-tests", gin.H{"name": "Proctor", "category": "soil"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/material-tests?category=soil", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tests []models.MaterialTest
	decodeData(t, w, &tests)
	require.Len(t, tests, 1)
	assert.Equal(t, "Proctor", tests[0].Name)

	w = env.do(t, http.MethodGet, "/api/v1/material-tests?category=plastic", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
