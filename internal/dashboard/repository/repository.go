package repository

import (
	"context"
	"time"
)

// StatsRepository defines the aggregate queries behind the dashboard
type StatsRepository interface {
	CountActiveTenants(ctx context.Context) (int64, error)
	CountAvailableProperties(ctx context.Context) (int64, error)
	// SumPaymentsBetween totals amount_paid for payments dated in [from, to)
	SumPaymentsBetween(ctx context.Context, from, to time.Time) (float64, error)
	// CountActiveLeasesEndingBy counts active leases with end_date <= by
	CountActiveLeasesEndingBy(ctx context.Context, by time.Time) (int64, error)
}
