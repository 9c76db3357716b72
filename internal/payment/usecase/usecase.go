package usecase

import (
	"context"

	"rentdesk-backend/internal/payment/domain"
)

// PaymentUsecase defines the business operations on payments
type PaymentUsecase interface {
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]*domain.PaymentView, error)
	ListTenantPayments(ctx context.Context, tenantID string) ([]*domain.PaymentView, error)
	// ExportPayments renders every payment as an XLSX workbook
	ExportPayments(ctx context.Context) ([]byte, error)
}

// RecordPaymentInput represents a payment submitted by the client. Dates are
// YYYY-MM-DD.
type RecordPaymentInput struct {
	LeaseID              string  `json:"lease_id" binding:"required"`
	TenantID             string  `json:"tenant_id" binding:"required"`
	PaymentDate          string  `json:"payment_date" binding:"required"`
	AmountPaid           float64 `json:"amount_paid" binding:"required,gt=0"`
	PeriodStart          string  `json:"payment_period_start" binding:"required"`
	PeriodEnd            string  `json:"payment_period_end" binding:"required"`
	PaymentMethod        string  `json:"payment_method" binding:"required"`
	TransactionReference string  `json:"transaction_reference"`
	Status               string  `json:"payment_status"`
	LateFee              float64 `json:"late_fee" binding:"gte=0"`
	Notes                string  `json:"notes"`
}
