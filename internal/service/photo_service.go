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

type photoStore interface {
	CreatePhoto(ctx context.Context, photo *models.Photo) error
	GetPhoto(ctx context.Context, id string) (*models.Photo, error)
	UpdatePhoto(ctx context.Context, id string, update models.PhotoUpdate) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
	ListPhotos(ctx context.Context, projectID string) ([]models.Photo, error)
	ProjectExists(ctx context.Context, id string) (bool, error)
}

type blobDeleter interface {
	Delete(locator string) error
}

// PhotoService manages site photo metadata. File bytes are written to
// the blob store before the record is created, never after.
type PhotoService struct {
	store     photoStore
	blobs     blobDeleter
	validator *validator.Validate
	clock     clock.Clock
	logger    *zap.Logger
}

// NewPhotoService constructs the service. blobs may be nil when record
// deletion should not touch stored bytes.
func NewPhotoService(store photoStore, blobs blobDeleter, validate *validator.Validate, clk clock.Clock, logger *zap.Logger) *PhotoService {
	if validate == nil {
		validate = NewValidator()
	}
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhotoService{store: store, blobs: blobs, validator: validate, clock: clk, logger: logger}
}

// CreatePhotoRequest describes the create payload. Filename is the
// blob-store locator of the already written bytes.
type CreatePhotoRequest struct {
	ProjectID   string     `json:"projectId" validate:"required"`
	Filename    string     `json:"filename" validate:"required"`
	Description string     `json:"description"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	TakenAt     *time.Time `json:"takenAt"`
}

// UpdatePhotoRequest describes the partial update payload.
type UpdatePhotoRequest struct {
	Description *string    `json:"description"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	TakenAt     *time.Time `json:"takenAt"`
}

// ListByProject returns the photos of one project, or all photos when
// projectID is empty.
func (s *PhotoService) ListByProject(ctx context.Context, projectID string) ([]models.Photo, error) {
	photos, err := s.store.ListPhotos(ctx, projectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list photos")
	}
	return photos, nil
}

// Get returns a photo by id.
func (s *PhotoService) Get(ctx context.Context, id string) (*models.Photo, error) {
	return s.store.GetPhoto(ctx, id)
}

// Create validates and persists photo metadata. The owning project
// must exist; coordinates are accepted only as a pair.
func (s *PhotoService) Create(ctx context.Context, req CreatePhotoRequest) (*models.Photo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "latitude and longitude must be provided together")
	}
	exists, err := s.store.ProjectExists(ctx, req.ProjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check project")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrIntegrity, "project does not exist")
	}

	takenAt := s.clock.Now()
	if req.TakenAt != nil {
		takenAt = req.TakenAt.UTC()
	}
	photo := &models.Photo{
		ProjectID:   req.ProjectID,
		Filename:    req.Filename,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TakenAt:     takenAt,
	}
	if err := s.store.CreatePhoto(ctx, photo); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create photo")
	}
	return photo, nil
}

// Update applies a partial update to photo metadata.
func (s *PhotoService) Update(ctx context.Context, id string, req UpdatePhotoRequest) (*models.Photo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "latitude and longitude must be provided together")
	}
	return s.store.UpdatePhoto(ctx, id, models.PhotoUpdate{
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TakenAt:     req.TakenAt,
	})
}

// Delete removes the record and then the stored bytes. A blob that
// fails to delete is logged, not surfaced: the record is already gone.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	photo, err := s.store.GetPhoto(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeletePhoto(ctx, id); err != nil {
		return err
	}
	if s.blobs != nil {
		if err := s.blobs.Delete(photo.Filename); err != nil {
			s.logger.Warn("photo blob delete failed", zap.String("locator", photo.Filename), zap.Error(err))
		}
	}
	return nil
}
