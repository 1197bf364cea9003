package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/internal/models"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

type materialTestStore interface {
	CreateMaterialTest(ctx context.Context, test *models.MaterialTest) error
	GetMaterialTest(ctx context.Context, id string) (*models.MaterialTest, error)
	UpdateMaterialTest(ctx context.Context, id string, update models.MaterialTestUpdate) (*models.MaterialTest, error)
	DeleteMaterialTest(ctx context.Context, id string) error
	ListMaterialTests(ctx context.Context, category models.MaterialCategory) ([]models.MaterialTest, error)
}

// MaterialTestService manages reusable test specification templates.
type MaterialTestService struct {
	store     materialTestStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMaterialTestService constructs the service.
func NewMaterialTestService(store materialTestStore, validate *validator.Validate, logger *zap.Logger) *MaterialTestService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialTestService{store: store, validator: validate, logger: logger}
}

// CreateMaterialTestRequest describes the create payload.
type CreateMaterialTestRequest struct {
	Name          string `json:"name" validate:"required"`
	Category      string `json:"category" validate:"required,materialcategory"`
	Specification string `json:"specification"`
}

// UpdateMaterialTestRequest describes the partial update payload.
// Changing the category never cascades to recorded results.
type UpdateMaterialTestRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Category      *string `json:"category" validate:"omitempty,materialcategory"`
	Specification *string `json:"specification"`
}

// List returns all tests, or only those of one category.
func (s *MaterialTestService) List(ctx context.Context, category string) ([]models.MaterialTest, error) {
	if category != "" {
		if err := s.validator.Var(category, "materialcategory"); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown material category")
		}
	}
	tests, err := s.store.ListMaterialTests(ctx, models.MaterialCategory(category))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list material tests")
	}
	return tests, nil
}

// Get returns a material test by id.
func (s *MaterialTestService) Get(ctx context.Context, id string) (*models.MaterialTest, error) {
	return s.store.GetMaterialTest(ctx, id)
}

// Create registers a new specification template.
func (s *MaterialTestService) Create(ctx context.Context, req CreateMaterialTestRequest) (*models.MaterialTest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	test := &models.MaterialTest{
		Name:          req.Name,
		Category:      models.MaterialCategory(req.Category),
		Specification: req.Specification,
	}
	if err := s.store.CreateMaterialTest(ctx, test); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create material test")
	}
	return test, nil
}

// Update applies a partial update.
func (s *MaterialTestService) Update(ctx context.Context, id string, req UpdateMaterialTestRequest) (*models.MaterialTest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	update := models.MaterialTestUpdate{
		Name:          req.Name,
		Specification: req.Specification,
	}
	if req.Category != nil {
		category := models.MaterialCategory(*req.Category)
		update.Category = &category
	}
	return s.store.UpdateMaterialTest(ctx, id, update)
}

// Delete removes a specification template.
func (s *MaterialTestService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteMaterialTest(ctx, id)
}
