// Package testutil provides a migrated in-memory database and fixtures for
// package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	propertydomain "rentdesk-backend/internal/property/domain"
	"rentdesk-backend/internal/schema"
	tenantdomain "rentdesk-backend/internal/tenant/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the schema applied.
// A single connection keeps every query on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, schema.Migrate(db))
	return db
}

// Date returns the UTC midnight for year, month, day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Clock returns a fixed time source
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func CreateTenant(t *testing.T, db *gorm.DB, firstName string, status tenantdomain.Status) *tenantdomain.Tenant {
	t.Helper()
	tenant := &tenantdomain.Tenant{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  "Tester",
		Phone:     "555-0100",
		Status:    status,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(tenant).Error)
	return tenant
}

func CreateProperty(t *testing.T, db *gorm.DB, name string, status propertydomain.Status) *propertydomain.Property {
	t.Helper()
	property := &propertydomain.Property{
		ID:           uuid.New().String(),
		Name:         name,
		PropertyType: "apartment",
		Address:      "1 Main St",
		MonthlyRent:  1200,
		Status:       status,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(property).Error)
	return property
}

// CreateLease inserts a lease row directly, without touching property status
func CreateLease(t *testing.T, db *gorm.DB, tenantID, propertyID string, start, end time.Time, dueDay int, status leasedomain.Status) *leasedomain.Lease {
	t.Helper()
	lease := &leasedomain.Lease{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		PropertyID:    propertyID,
		StartDate:     start,
		EndDate:       end,
		RentAmount:    1200,
		PaymentDueDay: dueDay,
		Status:        status,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(lease).Error)
	return lease
}
