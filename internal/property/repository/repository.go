package repository

import (
	"context"

	"rentdesk-backend/internal/property/domain"
)

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error

	// FindByID returns nil, nil when the property does not exist
	FindByID(ctx context.Context, id string) (*domain.Property, error)

	// List returns all properties, newest first
	List(ctx context.Context) ([]*domain.Property, error)

	Update(ctx context.Context, property *domain.Property) error

	// Delete reports whether a row was removed
	Delete(ctx context.Context, id string) (bool, error)
}
