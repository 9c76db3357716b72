package repository

import (
	"context"

	"rentdesk-backend/internal/tenant/domain"
)

// TenantRepository defines the interface for tenant data access
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error

	// FindByID returns nil, nil when the tenant does not exist
	FindByID(ctx context.Context, id string) (*domain.Tenant, error)

	// List returns all tenants, newest first
	List(ctx context.Context) ([]*domain.Tenant, error)

	Update(ctx context.Context, tenant *domain.Tenant) error

	// Delete reports whether a row was removed
	Delete(ctx context.Context, id string) (bool, error)
}
