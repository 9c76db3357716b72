package usecase

import (
	"context"
	"time"

	"rentdesk-backend/internal/dashboard/repository"
	"rentdesk-backend/pkg/dateutil"
)

// Leases ending within this many days count as expiring.
const expiringWithinDays = 30

// Stats is the dashboard summary
type Stats struct {
	ActiveTenants       int64   `json:"active_tenants"`
	AvailableProperties int64   `json:"available_properties"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	ExpiringLeases      int64   `json:"expiring_leases"`
}

// DashboardUsecase defines the interface for dashboard aggregation
type DashboardUsecase interface {
	ComputeStats(ctx context.Context) (*Stats, error)
}

type dashboardUsecase struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
}

// NewDashboardUsecase creates a new instance of dashboardUsecase. A nil
// clock uses time.Now.
func NewDashboardUsecase(statsRepo repository.StatsRepository, now func() time.Time) DashboardUsecase {
	if now == nil {
		now = time.Now
	}
	return &dashboardUsecase{statsRepo: statsRepo, now: now}
}

// ComputeStats runs four independent queries; the figures are not a
// consistent snapshot.
func (u *dashboardUsecase) ComputeStats(ctx context.Context) (*Stats, error) {
	today := dateutil.Date(u.now())
	stats := &Stats{}
	var err error

	if stats.ActiveTenants, err = u.statsRepo.CountActiveTenants(ctx); err != nil {
		return nil, err
	}
	if stats.AvailableProperties, err = u.statsRepo.CountAvailableProperties(ctx); err != nil {
		return nil, err
	}
	from, to := dateutil.MonthRange(today)
	if stats.MonthlyRevenue, err = u.statsRepo.SumPaymentsBetween(ctx, from, to); err != nil {
		return nil, err
	}
	if stats.ExpiringLeases, err = u.statsRepo.CountActiveLeasesEndingBy(ctx, dateutil.AddDays(today, expiringWithinDays)); err != nil {
		return nil, err
	}
	return stats, nil
}
