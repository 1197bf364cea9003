package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/internal/store"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

func newReportFixture(t *testing.T, now time.Time) (*ReportService, *store.Memory, *models.Project) {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory(clock.Fixed{Instant: now})
	project := &models.Project{Name: "River Depot", Location: "Pier 4", Status: models.ProjectStatusActive, Type: models.ProjectTypeBuilding}
	require.NoError(t, mem.CreateProject(ctx, project))
	return NewReportService(mem, clock.Fixed{Instant: now}, nil, nil, nil), mem, project
}

func TestReportServiceGenerateCSV(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, mem, project := newReportFixture(t, now)
	ctx := context.Background()

	require.NoError(t, mem.CreatePhoto(ctx, &models.Photo{ProjectID: project.ID, Filename: "slab.jpg", Description: "slab pour", TakenAt: now}))
	test := &models.MaterialTest{Name: "Cube strength", Category: models.MaterialCategoryConcrete}
	require.NoError(t, mem.CreateMaterialTest(ctx, test))
	require.NoError(t, mem.CreateTestResult(ctx, &models.TestResult{ProjectID: project.ID, MaterialTestID: test.ID, Result: "32.5 MPa", Status: models.ResultStatusPass, TestedAt: now}))

	result, err := svc.Generate(ctx, project.ID, ReportFormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "river-depot-report-2025-03-10.csv", result.Filename)

	body := string(result.Payload)
	assert.Contains(t, body, "Kind,Title,Detail,Status,Date")
	assert.Contains(t, body, "photo,slab.jpg,slab pour,,2025-03-10")
	assert.Contains(t, body, "test result,Cube strength,32.5 MPa,pass,2025-03-10")
}

func TestReportServiceGeneratePDF(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, mem, project := newReportFixture(t, now)
	ctx := context.Background()

	require.NoError(t, mem.CreateReminder(ctx, &models.Reminder{ProjectID: project.ID, Title: "599 inspection", Type: models.ReminderType599, ScheduledFor: now.AddDate(0, 0, 2)}))

	result, err := svc.Generate(ctx, project.ID, ReportFormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.True(t, strings.HasPrefix(string(result.Payload), "%PDF"))
}

func TestReportServiceGenerateRejectsUnknownFormat(t *testing.T) {
	svc, _, project := newReportFixture(t, time.Now())

	_, err := svc.Generate(context.Background(), project.ID, ReportFormat("xlsx"))
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestReportServiceGenerateMissingProject(t *testing.T) {
	svc, _, _ := newReportFixture(t, time.Now())

	_, err := svc.Generate(context.Background(), "missing", ReportFormatCSV)
	assert.True(t, appErrors.IsNotFound(err))
}
