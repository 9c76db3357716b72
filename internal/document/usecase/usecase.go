package usecase

import (
	"context"
	"io"

	"rentdesk-backend/internal/document/domain"
)

// DocumentUsecase defines the business operations on documents
type DocumentUsecase interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Document, error)
	ListDocuments(ctx context.Context) ([]*domain.Document, error)
	ListTenantDocuments(ctx context.Context, tenantID string) ([]*domain.Document, error)
	// Open returns the document and a reader over its contents. The caller
	// closes the reader.
	Open(ctx context.Context, id string) (*domain.Document, io.ReadCloser, error)
	// DeleteDocument removes the stored file, then the metadata row
	DeleteDocument(ctx context.Context, id string) error
}

// UploadInput describes an incoming file and what it belongs to
type UploadInput struct {
	TenantID     string
	LeaseID      string
	PropertyID   string
	DocumentType string
	Description  string
	UploadedBy   string
	FileName     string
	FileSize     int64
	ContentType  string
	Body         io.Reader
}
