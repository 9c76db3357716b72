package usecase

import (
	"context"

	"rentdesk-backend/internal/lease/domain"
)

// LeaseUsecase defines the business operations on leases
type LeaseUsecase interface {
	// CreateLease records a new active lease and occupies its property
	CreateLease(ctx context.Context, input CreateLeaseInput) (*domain.Lease, error)
	GetLease(ctx context.Context, id string) (*domain.Lease, error)
	ListLeases(ctx context.Context) ([]*domain.LeaseView, error)
	// SetLeaseStatus moves a lease between active and terminated
	SetLeaseStatus(ctx context.Context, id, status string) (*domain.Lease, error)
}

// CreateLeaseInput represents the fields accepted when creating a lease.
// Dates are YYYY-MM-DD.
type CreateLeaseInput struct {
	TenantID            string  `json:"tenant_id" binding:"required"`
	PropertyID          string  `json:"property_id" binding:"required"`
	StartDate           string  `json:"start_date" binding:"required"`
	EndDate             string  `json:"end_date" binding:"required"`
	RentAmount          float64 `json:"rent_amount" binding:"required,gt=0"`
	SecurityDepositPaid float64 `json:"security_deposit_paid" binding:"gte=0"`
	PaymentDueDay       int     `json:"payment_due_day" binding:"omitempty,min=1,max=31"`
	TermsConditions     string  `json:"terms_conditions"`
}
