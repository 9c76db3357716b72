// Package schema owns the table set and its migration.
package schema

import (
	documentdomain "rentdesk-backend/internal/document/domain"
	leasedomain "rentdesk-backend/internal/lease/domain"
	paymentdomain "rentdesk-backend/internal/payment/domain"
	propertydomain "rentdesk-backend/internal/property/domain"
	reminderdomain "rentdesk-backend/internal/reminder/domain"
	tenantdomain "rentdesk-backend/internal/tenant/domain"

	"gorm.io/gorm"
)

// Models returns every persisted model, parents before children
func Models() []interface{} {
	return []interface{}{
		&tenantdomain.Tenant{},
		&propertydomain.Property{},
		&leasedomain.Lease{},
		&paymentdomain.Payment{},
		&reminderdomain.Reminder{},
		&documentdomain.Document{},
	}
}

// Migrate creates or updates all tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
