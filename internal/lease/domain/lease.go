package domain

import (
	"time"

	propertydomain "rentdesk-backend/internal/property/domain"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
)

// Status represents the lifecycle state of a lease
type Status string

const (
	StatusActive     Status = "active"
	StatusTerminated Status = "terminated"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusTerminated
}

// Lease links one tenant to one property for a period of time
type Lease struct {
	ID                  string                   `json:"id" gorm:"primaryKey"`
	TenantID            string                   `json:"tenant_id" gorm:"index;not null"`
	Tenant              *tenantdomain.Tenant     `json:"-" gorm:"foreignKey:TenantID"`
	PropertyID          string                   `json:"property_id" gorm:"index;not null"`
	Property            *propertydomain.Property `json:"-" gorm:"foreignKey:PropertyID"`
	StartDate           time.Time                `json:"start_date" gorm:"not null"`
	EndDate             time.Time                `json:"end_date" gorm:"index;not null"`
	RentAmount          float64                  `json:"rent_amount" gorm:"not null"`
	SecurityDepositPaid float64                  `json:"security_deposit_paid"`
	PaymentDueDay       int                      `json:"payment_due_day" gorm:"not null;default:1"`
	Status              Status                   `json:"status" gorm:"index;default:active"`
	TermsConditions     string                   `json:"terms_conditions"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

// LeaseView is a lease joined with the names shown in listings
type LeaseView struct {
	Lease
	TenantName   string `json:"tenant_name"`
	PropertyName string `json:"property_name"`
	Address      string `json:"address"`
}
