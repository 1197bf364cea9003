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

func newTestResultFixture(t *testing.T, now time.Time) (*TestResultService, *models.Project, *models.MaterialTest) {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory(clock.Fixed{Instant: now})
	project := &models.Project{Name: "Depot", Status: models.ProjectStatusActive, Type: models.ProjectTypeBuilding}
	require.NoError(t, mem.CreateProject(ctx, project))
	test := &models.MaterialTest{Name: "Cube strength", Category: models.MaterialCategoryConcrete, Specification: "EN 12390-3"}
	require.NoError(t, mem.CreateMaterialTest(ctx, test))
	return NewTestResultService(mem, nil, clock.Fixed{Instant: now}, nil), project, test
}

func TestTestResultServiceCreateDefaultsTestedAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, project, test := newTestResultFixture(t, now)

	result, err := svc.Create(context.Background(), CreateTestResultRequest{
		ProjectID:      project.ID,
		MaterialTestID: test.ID,
		Result:         "32.5 MPa",
		Status:         "pass",
	})
	require.NoError(t, err)
	assert.Equal(t, now, result.TestedAt)
}

func TestTestResultServiceCreateChecksBothReferences(t *testing.T) {
	svc, project, test := newTestResultFixture(t, time.Now())
	ctx := context.Background()

	cases := []struct {
		name           string
		projectID      string
		materialTestID string
	}{
		{"missing project", "no-such-project", test.ID},
		{"missing material test", project.ID, "no-such-test"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, CreateTestResultRequest{
				ProjectID:      tc.projectID,
				MaterialTestID: tc.materialTestID,
				Result:         "32.5 MPa",
				Status:         "pass",
			})
			require.Error(t, err)

			var appErr *appErrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, appErrors.ErrIntegrity.Code, appErr.Code)
		})
	}
}

func TestTestResultServiceListJoinsDisplayNames(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, project, test := newTestResultFixture(t, now)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTestResultRequest{
		ProjectID:      project.ID,
		MaterialTestID: test.ID,
		Result:         "32.5 MPa",
		Status:         "pass",
	})
	require.NoError(t, err)

	views, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Depot", views[0].ProjectName)
	assert.Equal(t, "Cube strength", views[0].TestName)
}

type danglingResultStore struct {
	testResultStore
	results []models.TestResult
}

func (d *danglingResultStore) ListTestResults(context.Context, string) ([]models.TestResult, error) {
	return d.results, nil
}

func (d *danglingResultStore) ListProjects(context.Context) ([]models.Project, error) {
	return nil, nil
}

func (d *danglingResultStore) ListMaterialTests(context.Context, models.MaterialCategory) ([]models.MaterialTest, error) {
	return nil, nil
}

func TestTestResultServiceListRendersPlaceholders(t *testing.T) {
	svc := NewTestResultService(&danglingResultStore{
		results: []models.TestResult{{ID: "r1", ProjectID: "gone", MaterialTestID: "gone", Result: "n/a", Status: models.ResultStatusFail}},
	}, nil, nil, nil)

	views, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, UnknownProject, views[0].ProjectName)
	assert.Equal(t, UnknownTest, views[0].TestName)
}
