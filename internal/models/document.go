package models

import "time"

// DocumentType enumerates the document categories.
type DocumentType string

const (
	DocumentTypeDrawing       DocumentType = "drawing"
	DocumentTypeSpecification DocumentType = "specification"
	DocumentTypeReport        DocumentType = "report"
	DocumentTypePermit        DocumentType = "permit"
	DocumentTypeInvoice       DocumentType = "invoice"
	DocumentTypeOther         DocumentType = "other"
)

// Document is a file attached to a project. Filename is the blob-store
// locator, OriginalName the name the uploader supplied.
type Document struct {
	ID           string       `db:"id" json:"id"`
	ProjectID    string       `db:"project_id" json:"projectId"`
	Filename     string       `db:"filename" json:"filename"`
	OriginalName string       `db:"original_name" json:"originalName"`
	Type         DocumentType `db:"type" json:"type"`
	Size         int64        `db:"size" json:"size"`
	UploadedAt   time.Time    `db:"uploaded_at" json:"uploadedAt"`
}

// DocumentUpdate carries a partial update; nil fields are left unchanged.
type DocumentUpdate struct {
	OriginalName *string       `json:"originalName,omitempty"`
	Type         *DocumentType `json:"type,omitempty"`
}
