package usecase

import (
	"context"

	"rentdesk-backend/internal/lease/domain"
	"rentdesk-backend/internal/lease/repository"
	"rentdesk-backend/pkg/apperror"
	"rentdesk-backend/pkg/dateutil"

	"go.uber.org/zap"
)

const defaultPaymentDueDay = 1

type leaseUsecase struct {
	leaseRepo repository.LeaseRepository
	log       *zap.Logger
}

// NewLeaseUsecase creates a new instance of leaseUsecase
func NewLeaseUsecase(leaseRepo repository.LeaseRepository, log *zap.Logger) LeaseUsecase {
	return &leaseUsecase{leaseRepo: leaseRepo, log: log}
}

func (u *leaseUsecase) CreateLease(ctx context.Context, input CreateLeaseInput) (*domain.Lease, error) {
	if input.TenantID == "" || input.PropertyID == "" {
		return nil, apperror.Validation("tenant_id and property_id are required")
	}
	start, err := dateutil.Parse(input.StartDate)
	if err != nil {
		return nil, apperror.Validation("start_date: %v", err)
	}
	end, err := dateutil.Parse(input.EndDate)
	if err != nil {
		return nil, apperror.Validation("end_date: %v", err)
	}
	if !end.After(start) {
		return nil, apperror.Validation("end_date must be after start_date")
	}
	if input.RentAmount <= 0 {
		return nil, apperror.Validation("rent_amount must be greater than zero")
	}

	dueDay := input.PaymentDueDay
	if dueDay == 0 {
		dueDay = defaultPaymentDueDay
	}
	if dueDay < 1 || dueDay > 31 {
		return nil, apperror.Validation("payment_due_day must be between 1 and 31")
	}

	lease := &domain.Lease{
		TenantID:            input.TenantID,
		PropertyID:          input.PropertyID,
		StartDate:           start,
		EndDate:             end,
		RentAmount:          input.RentAmount,
		SecurityDepositPaid: input.SecurityDepositPaid,
		PaymentDueDay:       dueDay,
		Status:              domain.StatusActive,
		TermsConditions:     input.TermsConditions,
	}
	if err := u.leaseRepo.CreateWithOccupancy(ctx, lease); err != nil {
		return nil, err
	}

	u.log.Info("lease created",
		zap.String("lease_id", lease.ID),
		zap.String("tenant_id", lease.TenantID),
		zap.String("property_id", lease.PropertyID),
	)
	return lease, nil
}

func (u *leaseUsecase) GetLease(ctx context.Context, id string) (*domain.Lease, error) {
	lease, err := u.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, apperror.NotFound("lease")
	}
	return lease, nil
}

func (u *leaseUsecase) ListLeases(ctx context.Context) ([]*domain.LeaseView, error) {
	return u.leaseRepo.List(ctx)
}

func (u *leaseUsecase) SetLeaseStatus(ctx context.Context, id, status string) (*domain.Lease, error) {
	s := domain.Status(status)
	if !s.Valid() {
		return nil, apperror.Validation("status must be active or terminated")
	}
	lease, err := u.leaseRepo.UpdateStatus(ctx, id, s)
	if err != nil {
		return nil, err
	}
	u.log.Info("lease status changed", zap.String("lease_id", id), zap.String("status", status))
	return lease, nil
}
