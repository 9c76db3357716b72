package repository

import (
	"context"
	"database/sql"
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	paymentdomain "rentdesk-backend/internal/payment/domain"
	propertydomain "rentdesk-backend/internal/property/domain"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
	"rentdesk-backend/pkg/apperror"

	"gorm.io/gorm"
)

type gormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a GORM-backed StatsRepository
func NewGormStatsRepository(db *gorm.DB) StatsRepository {
	return &gormStatsRepository{db: db}
}

func (r *gormStatsRepository) CountActiveTenants(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&tenantdomain.Tenant{}).
		Where("status = ?", tenantdomain.StatusActive).Count(&count).Error
	if err != nil {
		return 0, apperror.DataStore("dashboard.active_tenants", err)
	}
	return count, nil
}

func (r *gormStatsRepository) CountAvailableProperties(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&propertydomain.Property{}).
		Where("status = ?", propertydomain.StatusAvailable).Count(&count).Error
	if err != nil {
		return 0, apperror.DataStore("dashboard.available_properties", err)
	}
	return count, nil
}

func (r *gormStatsRepository) SumPaymentsBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&paymentdomain.Payment{}).
		Select("SUM(amount_paid)").
		Where("payment_date >= ? AND payment_date < ?", from, to).
		Row().Scan(&total)
	if err != nil {
		return 0, apperror.DataStore("dashboard.monthly_revenue", err)
	}
	return total.Float64, nil
}

func (r *gormStatsRepository) CountActiveLeasesEndingBy(ctx context.Context, by time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&leasedomain.Lease{}).
		Where("status = ? AND end_date <= ?", leasedomain.StatusActive, by).Count(&count).Error
	if err != nil {
		return 0, apperror.DataStore("dashboard.expiring_leases", err)
	}
	return count, nil
}
