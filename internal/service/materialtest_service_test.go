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

func newMaterialTestFixture(t *testing.T) *MaterialTestService {
	t.Helper()
	mem := store.NewMemory(clock.Fixed{Instant: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)})
	return NewMaterialTestService(mem, nil, nil)
}

func TestMaterialTestServiceListFiltersByCategory(t *testing.T) {
	svc := newMaterialTestFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateMaterialTestRequest{Name: "Cube strength", Category: "concrete", Specification: "EN 12390-3"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateMaterialTestRequest{Name: "Proctor", Category: "soil", Specification: "ASTM D698"})
	require.NoError(t, err)

	concrete, err := svc.List(ctx, "concrete")
	require.NoError(t, err)
	require.Len(t, concrete, 1)
	assert.Equal(t, "Cube strength", concrete[0].Name)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMaterialTestServiceListRejectsUnknownCategory(t *testing.T) {
	svc := newMaterialTestFixture(t)

	_, err := svc.List(context.Background(), "plastic")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestMaterialTestServiceUpdateCategoryLeavesResultsAlone(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mem := store.NewMemory(clock.Fixed{Instant: now})
	svc := NewMaterialTestService(mem, nil, nil)
	ctx := context.Background()

	project := &models.Project{Name: "Depot", Status: models.ProjectStatusActive, Type: models.ProjectTypeBuilding}
	require.NoError(t, mem.CreateProject(ctx, project))

	test, err := svc.Create(ctx, CreateMaterialTestRequest{Name: "Cube strength", Category: "concrete"})
	require.NoError(t, err)

	result := &models.TestResult{ProjectID: project.ID, MaterialTestID: test.ID, Result: "32.5 MPa", Status: models.ResultStatusPass, TestedAt: now}
	require.NoError(t, mem.CreateTestResult(ctx, result))

	category := "asphalt"
	_, err = svc.Update(ctx, test.ID, UpdateMaterialTestRequest{Category: &category})
	require.NoError(t, err)

	kept, err := mem.GetTestResult(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, test.ID, kept.MaterialTestID)
	assert.Equal(t, models.ResultStatusPass, kept.Status)
}
