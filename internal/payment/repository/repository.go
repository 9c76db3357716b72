package repository

import (
	"context"

	"rentdesk-backend/internal/payment/domain"
)

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error

	// List returns every payment with tenant and property names, latest
	// payment date first
	List(ctx context.Context) ([]*domain.PaymentView, error)

	// ListByTenant returns a tenant's payments with property names
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.PaymentView, error)

	// LeaseBelongsTo reports whether leaseID exists and is held by tenantID
	LeaseBelongsTo(ctx context.Context, leaseID, tenantID string) (exists bool, matches bool, err error)
}
