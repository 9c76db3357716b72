package repository

import (
	"context"
	"errors"
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	"rentdesk-backend/internal/payment/domain"
	"rentdesk-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a GORM-backed PaymentRepository
func NewGormPaymentRepository(db *gorm.DB) PaymentRepository {
	return &gormPaymentRepository{db: db}
}

func (r *gormPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.CreatedAt = time.Now()
	return apperror.DataStore("payment.create", r.db.WithContext(ctx).Create(payment).Error)
}

func (r *gormPaymentRepository) List(ctx context.Context) ([]*domain.PaymentView, error) {
	var payments []*domain.PaymentView
	err := r.joined(ctx).
		Select("p.*, t.first_name || ' ' || t.last_name AS tenant_name, pr.property_name").
		Joins("JOIN tenants t ON p.tenant_id = t.id").
		Order("p.payment_date DESC").
		Scan(&payments).Error
	if err != nil {
		return nil, apperror.DataStore("payment.list", err)
	}
	return payments, nil
}

func (r *gormPaymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.PaymentView, error) {
	var payments []*domain.PaymentView
	err := r.joined(ctx).
		Select("p.*, pr.property_name").
		Where("p.tenant_id = ?", tenantID).
		Order("p.payment_date DESC").
		Scan(&payments).Error
	if err != nil {
		return nil, apperror.DataStore("payment.list_by_tenant", err)
	}
	return payments, nil
}

func (r *gormPaymentRepository) LeaseBelongsTo(ctx context.Context, leaseID, tenantID string) (bool, bool, error) {
	var lease leasedomain.Lease
	err := r.db.WithContext(ctx).Select("id", "tenant_id").Where("id = ?", leaseID).First(&lease).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, false, nil
		}
		return false, false, apperror.DataStore("payment.lookup_lease", err)
	}
	return true, lease.TenantID == tenantID, nil
}

func (r *gormPaymentRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("payments AS p").
		Joins("JOIN leases l ON p.lease_id = l.id").
		Joins("JOIN properties pr ON l.property_id = pr.id")
}
