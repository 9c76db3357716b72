package domain

import (
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
)

// Type is the obligation a reminder is about
type Type string

const (
	TypeRentDue     Type = "rent_due"
	TypeLeaseExpiry Type = "lease_expiry"
)

// Priority represents reminder urgency
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Status represents whether the reminder has gone out
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
)

// Reminder is a scheduled notice for an upcoming rent payment or lease end.
// Reminders are created by generation and only ever changed by marking them
// sent.
type Reminder struct {
	ID        string               `json:"id" gorm:"primaryKey"`
	LeaseID   string               `json:"lease_id" gorm:"index:idx_reminder_lease_type;not null"`
	Lease     *leasedomain.Lease   `json:"-" gorm:"foreignKey:LeaseID"`
	TenantID  string               `json:"tenant_id" gorm:"index;not null"`
	Tenant    *tenantdomain.Tenant `json:"-" gorm:"foreignKey:TenantID"`
	Type      Type                 `json:"reminder_type" gorm:"column:reminder_type;index:idx_reminder_lease_type;not null"`
	DueDate   time.Time            `json:"due_date" gorm:"index;not null"`
	Message   string               `json:"message"`
	Priority  Priority             `json:"priority" gorm:"default:medium"`
	Sent      bool                 `json:"sent" gorm:"column:is_sent;default:false"`
	SentAt    *time.Time           `json:"sent_at,omitempty"`
	Status    Status               `json:"status" gorm:"index;default:pending"`
	CreatedAt time.Time            `json:"created_at"`
}

// ReminderView is a reminder joined with tenant contact details and, for
// upcoming listings, the property name
type ReminderView struct {
	Reminder
	TenantName   string `json:"tenant_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PropertyName string `json:"property_name,omitempty"`
}
