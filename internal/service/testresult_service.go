package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

type testResultStore interface {
	CreateTestResult(ctx context.Context, result *models.TestResult) error
	GetTestResult(ctx context.Context, id string) (*models.TestResult, error)
	DeleteTestResult(ctx context.Context, id string) error
	ListTestResults(ctx context.Context, projectID string) ([]models.TestResult, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListMaterialTests(ctx context.Context, category models.MaterialCategory) ([]models.MaterialTest, error)
	ProjectExists(ctx context.Context, id string) (bool, error)
	MaterialTestExists(ctx context.Context, id string) (bool, error)
}

// TestResultService records performed material tests and builds the
// joined list view.
type TestResultService struct {
	store     testResultStore
	validator *validator.Validate
	clock     clock.Clock
	logger    *zap.Logger
}

// NewTestResultService constructs the service.
func NewTestResultService(store testResultStore, validate *validator.Validate, clk clock.Clock, logger *zap.Logger) *TestResultService {
	if validate == nil {
		validate = NewValidator()
	}
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TestResultService{store: store, validator: validate, clock: clk, logger: logger}
}

// CreateTestResultRequest describes the create payload.
type CreateTestResultRequest struct {
	ProjectID      string     `json:"projectId" validate:"required"`
	MaterialTestID string     `json:"materialTestId" validate:"required"`
	Result         string     `json:"result" validate:"required"`
	Status         string     `json:"status" validate:"required,resultstatus"`
	TestedAt       *time.Time `json:"testedAt"`
}

// List returns result views with project and test names joined in.
// A dangling reference renders a placeholder, never an error.
func (s *TestResultService) List(ctx context.Context, projectID string) ([]models.TestResultView, error) {
	results, err := s.store.ListTestResults(ctx, projectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test results")
	}
	projectNames, testNames, err := s.displayNames(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.TestResultView, len(results))
	for i, result := range results {
		view := models.TestResultView{
			TestResult:  result,
			ProjectName: UnknownProject,
			TestName:    UnknownTest,
		}
		if name, ok := projectNames[result.ProjectID]; ok {
			view.ProjectName = name
		}
		if name, ok := testNames[result.MaterialTestID]; ok {
			view.TestName = name
		}
		views[i] = view
	}
	return views, nil
}

// Get returns a test result by id.
func (s *TestResultService) Get(ctx context.Context, id string) (*models.TestResult, error) {
	return s.store.GetTestResult(ctx, id)
}

// Create validates both foreign keys and persists the result. TestedAt
// defaults to the current time.
func (s *TestResultService) Create(ctx context.Context, req CreateTestResultRequest) (*models.TestResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	projectExists, err := s.store.ProjectExists(ctx, req.ProjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check project")
	}
	if !projectExists {
		return nil, appErrors.Clone(appErrors.ErrIntegrity, "project does not exist")
	}
	testExists, err := s.store.MaterialTestExists(ctx, req.MaterialTestID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check material test")
	}
	if !testExists {
		return nil, appErrors.Clone(appErrors.ErrIntegrity, "material test does not exist")
	}

	testedAt := s.clock.Now()
	if req.TestedAt != nil {
		testedAt = req.TestedAt.UTC()
	}
	result := &models.TestResult{
		ProjectID:      req.ProjectID,
		MaterialTestID: req.MaterialTestID,
		Result:         req.Result,
		Status:         models.ResultStatus(req.Status),
		TestedAt:       testedAt,
	}
	if err := s.store.CreateTestResult(ctx, result); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create test result")
	}
	return result, nil
}

// Delete removes a test result.
func (s *TestResultService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteTestResult(ctx, id)
}

func (s *TestResultService) displayNames(ctx context.Context) (map[string]string, map[string]string, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list projects")
	}
	tests, err := s.store.ListMaterialTests(ctx, "")
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list material tests")
	}
	projectNames := make(map[string]string, len(projects))
	for _, project := range projects {
		projectNames[project.ID] = project.Name
	}
	testNames := make(map[string]string, len(tests))
	for _, test := range tests {
		testNames[test.ID] = test.Name
	}
	return projectNames, testNames, nil
}
