package usecase

import (
	"context"

	"rentdesk-backend/internal/reminder/domain"
)

// GenerateResult counts the reminders created by one generation run
type GenerateResult struct {
	RentDue     int `json:"rent_due"`
	LeaseExpiry int `json:"lease_expiry"`
}

// Total returns the number of reminders created across both batches
func (r GenerateResult) Total() int {
	return r.RentDue + r.LeaseExpiry
}

// ReminderUsecase defines the interface for the reminder engine
type ReminderUsecase interface {
	// GenerateReminders creates the rent-due and lease-expiry reminders that
	// are missing for active leases. Repeated calls in the same month create
	// nothing new.
	GenerateReminders(ctx context.Context) (GenerateResult, error)

	ListPending(ctx context.Context) ([]*domain.ReminderView, error)

	// ListUpcoming returns pending reminders due from today through
	// today+windowDays. A non-positive window uses the configured default.
	ListUpcoming(ctx context.Context, windowDays int) ([]*domain.ReminderView, error)

	MarkSent(ctx context.Context, id string) error
}
