package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/internal/models"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

type reminderStore interface {
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	GetReminder(ctx context.Context, id string) (*models.Reminder, error)
	UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
	ListReminders(ctx context.Context, projectID string) ([]models.Reminder, error)
	ListActiveReminders(ctx context.Context) ([]models.Reminder, error)
	CompleteReminder(ctx context.Context, id string) (*models.Reminder, error)
	ProjectExists(ctx context.Context, id string) (bool, error)
}

// ReminderService manages inspection reminders. Completion is terminal:
// the API exposes no way to reopen a completed reminder.
type ReminderService struct {
	store     reminderStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReminderService constructs the service.
func NewReminderService(store reminderStore, validate *validator.Validate, logger *zap.Logger) *ReminderService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderService{store: store, validator: validate, logger: logger}
}

// CreateReminderRequest describes the create payload.
type CreateReminderRequest struct {
	ProjectID    string    `json:"projectId" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Type         string    `json:"type" validate:"required,remindertype"`
	ScheduledFor time.Time `json:"scheduledFor" validate:"required"`
}

// UpdateReminderRequest describes the partial update payload.
// Completion state is not updatable here.
type UpdateReminderRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=1"`
	Type         *string    `json:"type" validate:"omitempty,remindertype"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

// ListByProject returns reminders for one project, or all when
// projectID is empty, ordered by scheduled time.
func (s *ReminderService) ListByProject(ctx context.Context, projectID string) ([]models.Reminder, error) {
	reminders, err := s.store.ListReminders(ctx, projectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reminders")
	}
	return reminders, nil
}

// ListActive returns all incomplete reminders ordered by scheduled
// time ascending.
func (s *ReminderService) ListActive(ctx context.Context) ([]models.Reminder, error) {
	reminders, err := s.store.ListActiveReminders(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reminders")
	}
	return reminders, nil
}

// Get returns a reminder by id.
func (s *ReminderService) Get(ctx context.Context, id string) (*models.Reminder, error) {
	return s.store.GetReminder(ctx, id)
}

// Create validates and persists a reminder. Completed always starts
// false.
func (s *ReminderService) Create(ctx context.Context, req CreateReminderRequest) (*models.Reminder, error) {
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

	reminder := &models.Reminder{
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Type:         models.ReminderType(req.Type),
		ScheduledFor: req.ScheduledFor.UTC(),
		Completed:    false,
	}
	if err := s.store.CreateReminder(ctx, reminder); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create reminder")
	}
	return reminder, nil
}

// Update applies a partial update to scheduling fields.
func (s *ReminderService) Update(ctx context.Context, id string, req UpdateReminderRequest) (*models.Reminder, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	update := models.ReminderUpdate{
		Title:        req.Title,
		ScheduledFor: req.ScheduledFor,
	}
	if req.Type != nil {
		reminderType := models.ReminderType(*req.Type)
		update.Type = &reminderType
	}
	return s.store.UpdateReminder(ctx, id, update)
}

// Complete marks a reminder done. Completing one that is already done
// succeeds and changes nothing; a missing id is NotFound.
func (s *ReminderService) Complete(ctx context.Context, id string) (*models.Reminder, error) {
	return s.store.CompleteReminder(ctx, id)
}

// Delete removes a reminder.
func (s *ReminderService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteReminder(ctx, id)
}
