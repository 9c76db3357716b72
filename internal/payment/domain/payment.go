package domain

import (
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
)

const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Payment is a rent payment made against a lease
type Payment struct {
	ID                   string               `json:"id" gorm:"primaryKey"`
	LeaseID              string               `json:"lease_id" gorm:"index;not null"`
	Lease                *leasedomain.Lease   `json:"-" gorm:"foreignKey:LeaseID"`
	TenantID             string               `json:"tenant_id" gorm:"index;not null"`
	Tenant               *tenantdomain.Tenant `json:"-" gorm:"foreignKey:TenantID"`
	PaymentDate          time.Time            `json:"payment_date" gorm:"index;not null"`
	AmountPaid           float64              `json:"amount_paid" gorm:"not null"`
	PeriodStart          time.Time            `json:"payment_period_start" gorm:"column:payment_period_start;not null"`
	PeriodEnd            time.Time            `json:"payment_period_end" gorm:"column:payment_period_end;not null"`
	PaymentMethod        string               `json:"payment_method" gorm:"not null"`
	TransactionReference string               `json:"transaction_reference"`
	Status               string               `json:"payment_status" gorm:"column:payment_status;default:completed"`
	LateFee              float64              `json:"late_fee" gorm:"default:0"`
	Notes                string               `json:"notes"`
	CreatedAt            time.Time            `json:"created_at"`
}

// PaymentView is a payment joined with the names shown in listings
type PaymentView struct {
	Payment
	TenantName   string `json:"tenant_name,omitempty"`
	PropertyName string `json:"property_name"`
}
