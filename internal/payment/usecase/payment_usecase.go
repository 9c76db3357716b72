package usecase

import (
	"context"

	"rentdesk-backend/internal/payment/domain"
	"rentdesk-backend/internal/payment/export"
	"rentdesk-backend/internal/payment/repository"
	"rentdesk-backend/pkg/apperror"
	"rentdesk-backend/pkg/dateutil"
)

type paymentUsecase struct {
	paymentRepo repository.PaymentRepository
}

// NewPaymentUsecase creates a new instance of paymentUsecase
func NewPaymentUsecase(paymentRepo repository.PaymentRepository) PaymentUsecase {
	return &paymentUsecase{paymentRepo: paymentRepo}
}

func (u *paymentUsecase) RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error) {
	paidOn, err := dateutil.Parse(input.PaymentDate)
	if err != nil {
		return nil, apperror.Validation("payment_date: %v", err)
	}
	periodStart, err := dateutil.Parse(input.PeriodStart)
	if err != nil {
		return nil, apperror.Validation("payment_period_start: %v", err)
	}
	periodEnd, err := dateutil.Parse(input.PeriodEnd)
	if err != nil {
		return nil, apperror.Validation("payment_period_end: %v", err)
	}
	if periodEnd.Before(periodStart) {
		return nil, apperror.Validation("payment_period_end must not be before payment_period_start")
	}
	if input.AmountPaid <= 0 {
		return nil, apperror.Validation("amount_paid must be greater than zero")
	}
	if input.PaymentMethod == "" {
		return nil, apperror.Validation("payment_method is required")
	}

	exists, matches, err := u.paymentRepo.LeaseBelongsTo(ctx, input.LeaseID, input.TenantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("lease")
	}
	if !matches {
		return nil, apperror.Validation("lease %s is not held by tenant %s", input.LeaseID, input.TenantID)
	}

	status := input.Status
	switch status {
	case "":
		status = domain.StatusCompleted
	case domain.StatusCompleted, domain.StatusPending, domain.StatusFailed:
	default:
		return nil, apperror.Validation("payment_status must be completed, pending or failed")
	}

	payment := &domain.Payment{
		LeaseID:              input.LeaseID,
		TenantID:             input.TenantID,
		PaymentDate:          paidOn,
		AmountPaid:           input.AmountPaid,
		PeriodStart:          periodStart,
		PeriodEnd:            periodEnd,
		PaymentMethod:        input.PaymentMethod,
		TransactionReference: input.TransactionReference,
		Status:               status,
		LateFee:              input.LateFee,
		Notes:                input.Notes,
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (u *paymentUsecase) ListPayments(ctx context.Context) ([]*domain.PaymentView, error) {
	return u.paymentRepo.List(ctx)
}

func (u *paymentUsecase) ListTenantPayments(ctx context.Context, tenantID string) ([]*domain.PaymentView, error) {
	return u.paymentRepo.ListByTenant(ctx, tenantID)
}

func (u *paymentUsecase) ExportPayments(ctx context.Context) ([]byte, error) {
	payments, err := u.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return export.PaymentsWorkbook(payments)
}
