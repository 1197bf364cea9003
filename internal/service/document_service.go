package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/internal/models"
	"github.com/sitelog/sitelog-api/pkg/clock"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
)

type documentStore interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	UpdateDocument(ctx context.Context, id string, update models.DocumentUpdate) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, projectID string) ([]models.Document, error)
	ProjectExists(ctx context.Context, id string) (bool, error)
}

// DocumentService manages project document metadata.
type DocumentService struct {
	store     documentStore
	blobs     blobDeleter
	validator *validator.Validate
	clock     clock.Clock
	logger    *zap.Logger
}

// NewDocumentService constructs the service.
func NewDocumentService(store documentStore, blobs blobDeleter, validate *validator.Validate, clk clock.Clock, logger *zap.Logger) *DocumentService {
	if validate == nil {
		validate = NewValidator()
	}
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{store: store, blobs: blobs, validator: validate, clock: clk, logger: logger}
}

// CreateDocumentRequest describes the create payload.
type CreateDocumentRequest struct {
	ProjectID    string `json:"projectId" validate:"required"`
	Filename     string `json:"filename" validate:"required"`
	OriginalName string `json:"originalName" validate:"required"`
	Type         string `json:"type" validate:"required,doctype"`
	Size         int64  `json:"size" validate:"gte=0"`
}

// UpdateDocumentRequest describes the partial update payload.
type UpdateDocumentRequest struct {
	OriginalName *string `json:"originalName" validate:"omitempty,min=1"`
	Type         *string `json:"type" validate:"omitempty,doctype"`
}

// ListByProject returns the documents of one project, or all documents
// when projectID is empty.
func (s *DocumentService) ListByProject(ctx context.Context, projectID string) ([]models.Document, error) {
	docs, err := s.store.ListDocuments(ctx, projectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list documents")
	}
	return docs, nil
}

// Get returns a document by id.
func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	return s.store.GetDocument(ctx, id)
}

// Create validates and persists document metadata for already written
// bytes.
func (s *DocumentService) Create(ctx context.Context, req CreateDocumentRequest) (*models.Document, error) {
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

	doc := &models.Document{
		ProjectID:    req.ProjectID,
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		Type:         models.DocumentType(req.Type),
		Size:         req.Size,
		UploadedAt:   s.clock.Now(),
	}
	if err := s.store.CreateDocument(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create document")
	}
	return doc, nil
}

// Update applies a partial update.
func (s *DocumentService) Update(ctx context.Context, id string, req UpdateDocumentRequest) (*models.Document, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	update := models.DocumentUpdate{OriginalName: req.OriginalName}
	if req.Type != nil {
		docType := models.DocumentType(*req.Type)
		update.Type = &docType
	}
	return s.store.UpdateDocument(ctx, id, update)
}

// Delete removes the record and then the stored bytes.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteDocument(ctx, id); err != nil {
		return err
	}
	if s.blobs != nil {
		if err := s.blobs.Delete(doc.Filename); err != nil {
			s.logger.Warn("document blob delete failed", zap.String("locator", doc.Filename), zap.Error(err))
		}
	}
	return nil
}
