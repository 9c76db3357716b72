package repository

import (
	"context"

	"rentdesk-backend/internal/lease/domain"
)

// LeaseRepository defines the interface for lease data access
type LeaseRepository interface {
	// CreateWithOccupancy inserts the lease and marks its property occupied
	// in one transaction. Returns a NotFound error when the tenant or the
	// property does not exist.
	CreateWithOccupancy(ctx context.Context, lease *domain.Lease) error

	// FindByID returns nil, nil when the lease does not exist
	FindByID(ctx context.Context, id string) (*domain.Lease, error)

	// List returns all leases with tenant and property names, newest first
	List(ctx context.Context) ([]*domain.LeaseView, error)

	// UpdateStatus changes the lease status and keeps the property status in
	// step: active leases occupy their property, and terminating the last
	// active lease on a property makes it available again.
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Lease, error)
}
