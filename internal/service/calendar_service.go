package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/internal/models"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

type calendarStore interface {
	CreateCalendarEvent(ctx context.Context, event *models.CalendarEvent) error
	GetCalendarEvent(ctx context.Context, id string) (*models.CalendarEvent, error)
	UpdateCalendarEvent(ctx context.Context, id string, update models.CalendarEventUpdate) (*models.CalendarEvent, error)
	DeleteCalendarEvent(ctx context.Context, id string) error
	ListCalendarEvents(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ProjectExists(ctx context.Context, id string) (bool, error)
}

// CalendarService manages project calendar events.
//
// Month/year filtering works on UTC calendar months by policy: every
// timestamp in the system is UTC, so filtering never depends on the
// host timezone. Clients in other zones see UTC months.
type CalendarService struct {
	store     calendarStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCalendarService constructs the service.
func NewCalendarService(store calendarStore, validate *validator.Validate, logger *zap.Logger) *CalendarService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{store: store, validator: validate, logger: logger}
}

// CreateCalendarEventRequest describes the create payload.
type CreateCalendarEventRequest struct {
	ProjectID   string    `json:"projectId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Type        string    `json:"type" validate:"required,eventtype"`
}

// UpdateCalendarEventRequest describes the partial update payload.
type UpdateCalendarEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Type        *string    `json:"type" validate:"omitempty,eventtype"`
}

// List returns event views matching the filter, with project names
// joined in. Month and year only apply when both are present.
func (s *CalendarService) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEventView, error) {
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12")
	}
	events, err := s.store.ListCalendarEvents(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list calendar events")
	}
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list projects")
	}
	projectNames := make(map[string]string, len(projects))
	for _, project := range projects {
		projectNames[project.ID] = project.Name
	}

	views := make([]models.CalendarEventView, len(events))
	for i, event := range events {
		view := models.CalendarEventView{CalendarEvent: event, ProjectName: UnknownProject}
		if name, ok := projectNames[event.ProjectID]; ok {
			view.ProjectName = name
		}
		views[i] = view
	}
	return views, nil
}

// Get returns an event by id.
func (s *CalendarService) Get(ctx context.Context, id string) (*models.CalendarEvent, error) {
	return s.store.GetCalendarEvent(ctx, id)
}

// Create validates and persists an event.
func (s *CalendarService) Create(ctx context.Context, req CreateCalendarEventRequest) (*models.CalendarEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	exists, err := s.store.ProjectExists(ctx, req.ProjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check project")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrIntegrity, "project does not exist")
	}

	event := &models.CalendarEvent{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.UTC(),
		Type:        models.EventType(req.Type),
	}
	if err := s.store.CreateCalendarEvent(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create calendar event")
	}
	return event, nil
}

// Update applies a partial update.
func (s *CalendarService) Update(ctx context.Context, id string, req UpdateCalendarEventRequest) (*models.CalendarEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	update := models.CalendarEventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}
	if req.Type != nil {
		eventType := models.EventType(*req.Type)
		update.Type = &eventType
	}
	return s.store.UpdateCalendarEvent(ctx, id, update)
}

// Delete removes an event.
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteCalendarEvent(ctx, id)
}
