package repository

import (
	"context"
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	"rentdesk-backend/internal/reminder/domain"
)

// ReminderRepository defines the interface for reminder data access
type ReminderRepository interface {
	// Transaction runs fn against a repository bound to one transaction
	Transaction(ctx context.Context, fn func(tx ReminderRepository) error) error

	// ActiveLeases returns active leases in creation order, optionally only
	// those ending on or before endingBy
	ActiveLeases(ctx context.Context, endingBy *time.Time) ([]*leasedomain.Lease, error)

	// ExistsDueBetween reports whether the lease has a reminder of the given
	// type due in [from, to)
	ExistsDueBetween(ctx context.Context, leaseID string, reminderType domain.Type, from, to time.Time) (bool, error)

	// ExistsForLease reports whether the lease has any reminder of the type
	ExistsForLease(ctx context.Context, leaseID string, reminderType domain.Type) (bool, error)

	Create(ctx context.Context, reminder *domain.Reminder) error

	FindByID(ctx context.Context, id string) (*domain.Reminder, error)

	// ListPending returns pending reminders with tenant contact details,
	// earliest due date first
	ListPending(ctx context.Context) ([]*domain.ReminderView, error)

	// ListPendingDueBetween is ListPending limited to due dates in [from, to]
	// and joined with the property name
	ListPendingDueBetween(ctx context.Context, from, to time.Time) ([]*domain.ReminderView, error)

	// MarkSent flags the reminder as sent. Missing ids are not an error.
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
}
