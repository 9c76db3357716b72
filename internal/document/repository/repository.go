package repository

import (
	"context"

	"rentdesk-backend/internal/document/domain"
)

// DocumentRepository defines the interface for document metadata access
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error

	// FindByID returns nil, nil when the document does not exist
	FindByID(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents, latest upload first
	List(ctx context.Context) ([]*domain.Document, error)

	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Document, error)

	Delete(ctx context.Context, id string) error
}
