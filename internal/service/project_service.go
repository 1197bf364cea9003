package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

type projectStore interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListPhotos(ctx context.Context, projectID string) ([]models.Photo, error)
	ListDocuments(ctx context.Context, projectID string) ([]models.Document, error)
	PhotoCountsByProject(ctx context.Context) (map[string]int, error)
	DocumentCountsByProject(ctx context.Context) (map[string]int, error)
	ListActiveReminders(ctx context.Context) ([]models.Reminder, error)
}

// ProjectService manages the aggregate root and its derived read views.
type ProjectService struct {
	store     projectStore
	validator *validator.Validate
	clock     clock.Clock
	logger    *zap.Logger
	cleanup   *BlobCleanup
}

// WithCleanup attaches the background blob cleanup used after cascade
// deletes.
func (s *ProjectService) WithCleanup(cleanup *BlobCleanup) *ProjectService {
	s.cleanup = cleanup
	return s
}

// NewProjectService constructs the service.
func NewProjectService(store projectStore, validate *validator.Validate, clk clock.Clock, logger *zap.Logger) *ProjectService {
	if validate == nil {
		validate = NewValidator()
	}
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{store: store, validator: validate, clock: clk, logger: logger}
}

// CreateProjectRequest describes the create payload.
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status" validate:"omitempty,projectstatus"`
	Type        string `json:"type" validate:"required,projecttype"`
}

// UpdateProjectRequest describes the partial update payload; omitted
// fields are left unchanged.
type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Status      *string `json:"status" validate:"omitempty,projectstatus"`
	Type        *string `json:"type" validate:"omitempty,projecttype"`
}

// List returns all projects with derived counts and inspection labels.
func (s *ProjectService) List(ctx context.Context) ([]models.ProjectSummary, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list projects")
	}
	photoCounts, err := s.store.PhotoCountsByProject(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count photos")
	}
	docCounts, err := s.store.DocumentCountsByProject(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count documents")
	}
	nextLabels, err := s.nextInspectionByProject(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ProjectSummary, len(projects))
	for i, project := range projects {
		summaries[i] = models.ProjectSummary{
			Project:       project,
			PhotoCount:    photoCounts[project.ID],
			DocumentCount: docCounts[project.ID],
		}
		if label, ok := nextLabels[project.ID]; ok {
			summaries[i].NextInspection = &label
		}
	}
	return summaries, nil
}

// Get returns one project with derived fields.
func (s *ProjectService) Get(ctx context.Context, id string) (*models.ProjectSummary, error) {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	photoCounts, err := s.store.PhotoCountsByProject(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count photos")
	}
	docCounts, err := s.store.DocumentCountsByProject(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count documents")
	}
	nextLabels, err := s.nextInspectionByProject(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.ProjectSummary{
		Project:       *project,
		PhotoCount:    photoCounts[project.ID],
		DocumentCount: docCounts[project.ID],
	}
	if label, ok := nextLabels[project.ID]; ok {
		summary.NextInspection = &label
	}
	return summary, nil
}

// Create registers a new project. Status defaults to active.
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	status := models.ProjectStatus(req.Status)
	if status == "" {
		status = models.ProjectStatusActive
	}
	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Status:      status,
		Type:        models.ProjectType(req.Type),
	}
	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create project")
	}
	return project, nil
}

// Update applies a partial update.
func (s *ProjectService) Update(ctx context.Context, id string, req UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	update := models.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		update.Status = &status
	}
	if req.Type != nil {
		projectType := models.ProjectType(*req.Type)
		update.Type = &projectType
	}
	return s.store.UpdateProject(ctx, id, update)
}

// Delete removes the project and cascades to every dependent record.
// Stored files are cleaned up in the background afterwards.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	locators := s.collectLocators(ctx, id)
	if err := s.store.DeleteProject(ctx, id); err != nil {
		if appErrors.IsNotFound(err) {
			return err
		}
		s.logger.Error("project cascade delete failed", zap.String("project_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrCascadeFailed.Code, appErrors.ErrCascadeFailed.Status, "project delete did not complete")
	}
	if s.cleanup != nil {
		s.cleanup.Schedule(locators...)
	}
	return nil
}

// collectLocators snapshots the project's file locators before the
// cascade removes the records pointing at them.
func (s *ProjectService) collectLocators(ctx context.Context, id string) []string {
	if s.cleanup == nil {
		return nil
	}
	var locators []string
	photos, err := s.store.ListPhotos(ctx, id)
	if err != nil {
		s.logger.Warn("failed to list photos for cleanup", zap.String("project_id", id), zap.Error(err))
	}
	for _, photo := range photos {
		locators = append(locators, photo.Filename)
	}
	documents, err := s.store.ListDocuments(ctx, id)
	if err != nil {
		s.logger.Warn("failed to list documents for cleanup", zap.String("project_id", id), zap.Error(err))
	}
	for _, doc := range documents {
		locators = append(locators, doc.Filename)
	}
	return locators
}

// nextInspectionByProject picks the earliest pending reminder per
// project and renders its label. Active reminders arrive ordered, so
// the first one seen per project wins.
func (s *ProjectService) nextInspectionByProject(ctx context.Context) (map[string]string, error) {
	reminders, err := s.store.ListActiveReminders(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reminders")
	}
	now := s.clock.Now()
	labels := make(map[string]string)
	for _, reminder := range reminders {
		if _, seen := labels[reminder.ProjectID]; seen {
			continue
		}
		labels[reminder.ProjectID] = nextInspectionLabel(now, reminder.ScheduledFor)
	}
	return labels, nil
}
