package usecase

import (
	"context"
	"errors"
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	"rentdesk-backend/internal/reminder/domain"
	"rentdesk-backend/internal/reminder/repository"
	"rentdesk-backend/pkg/apperror"
	"rentdesk-backend/pkg/dateutil"
	"rentdesk-backend/pkg/lock"

	"go.uber.org/zap"
)

const (
	generateLockKey = "reminders:generate"

	// Leases ending within this many days get an expiry reminder.
	expiryHorizonDays = 60
	// Expiry reminders fall due this many days before the lease ends.
	expiryNoticeDays = 30

	defaultUpcomingWindowDays = 30
)

type reminderUsecase struct {
	reminderRepo  repository.ReminderRepository
	locker        lock.Locker
	log           *zap.Logger
	now           func() time.Time
	defaultWindow int
}

// Option configures a reminderUsecase
type Option func(*reminderUsecase)

// WithClock overrides the time source used to decide what "today" is
func WithClock(now func() time.Time) Option {
	return func(u *reminderUsecase) { u.now = now }
}

// WithUpcomingWindow sets the default window for ListUpcoming
func WithUpcomingWindow(days int) Option {
	return func(u *reminderUsecase) {
		if days > 0 {
			u.defaultWindow = days
		}
	}
}

// NewReminderUsecase creates a new instance of reminderUsecase
func NewReminderUsecase(reminderRepo repository.ReminderRepository, locker lock.Locker, log *zap.Logger, opts ...Option) ReminderUsecase {
	u := &reminderUsecase{
		reminderRepo:  reminderRepo,
		locker:        locker,
		log:           log,
		now:           time.Now,
		defaultWindow: defaultUpcomingWindowDays,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *reminderUsecase) today() time.Time {
	return dateutil.Date(u.now())
}

func (u *reminderUsecase) GenerateReminders(ctx context.Context) (GenerateResult, error) {
	var result GenerateResult

	release, err := u.locker.Acquire(ctx, generateLockKey)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return result, apperror.Conflict("reminder generation is already running")
		}
		return result, apperror.DataStore("reminder.generate.lock", err)
	}
	defer release()

	today := u.today()

	result.RentDue, err = u.generateRentDue(ctx, today)
	if err != nil {
		return result, err
	}
	result.LeaseExpiry, err = u.generateLeaseExpiry(ctx, today)
	if err != nil {
		return result, err
	}

	u.log.Info("Reminders generated",
		zap.Int("rent_due", result.RentDue),
		zap.Int("lease_expiry", result.LeaseExpiry),
		zap.String("today", dateutil.Format(today)))
	return result, nil
}

func (u *reminderUsecase) generateRentDue(ctx context.Context, today time.Time) (int, error) {
	created := 0
	err := u.reminderRepo.Transaction(ctx, func(tx repository.ReminderRepository) error {
		created = 0
		leases, err := tx.ActiveLeases(ctx, nil)
		if err != nil {
			return err
		}
		for _, l := range leases {
			due := dateutil.NextOccurrence(today, l.PaymentDueDay)
			from, to := dateutil.MonthRange(due)
			exists, err := tx.ExistsDueBetween(ctx, l.ID, domain.TypeRentDue, from, to)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			if err := tx.Create(ctx, rentDueReminder(l, due)); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (u *reminderUsecase) generateLeaseExpiry(ctx context.Context, today time.Time) (int, error) {
	created := 0
	horizon := dateutil.AddDays(today, expiryHorizonDays)
	err := u.reminderRepo.Transaction(ctx, func(tx repository.ReminderRepository) error {
		created = 0
		leases, err := tx.ActiveLeases(ctx, &horizon)
		if err != nil {
			return err
		}
		for _, l := range leases {
			exists, err := tx.ExistsForLease(ctx, l.ID, domain.TypeLeaseExpiry)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			if err := tx.Create(ctx, leaseExpiryReminder(l)); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func rentDueReminder(l *leasedomain.Lease, due time.Time) *domain.Reminder {
	return &domain.Reminder{
		LeaseID:  l.ID,
		TenantID: l.TenantID,
		Type:     domain.TypeRentDue,
		DueDate:  due,
		Message:  "Rent payment due on " + dateutil.Format(due),
		Priority: domain.PriorityHigh,
		Status:   domain.StatusPending,
	}
}

func leaseExpiryReminder(l *leasedomain.Lease) *domain.Reminder {
	end := dateutil.Date(l.EndDate)
	return &domain.Reminder{
		LeaseID:  l.ID,
		TenantID: l.TenantID,
		Type:     domain.TypeLeaseExpiry,
		DueDate:  dateutil.AddDays(end, -expiryNoticeDays),
		Message:  "Lease expires on " + dateutil.Format(end),
		Priority: domain.PriorityUrgent,
		Status:   domain.StatusPending,
	}
}

func (u *reminderUsecase) ListPending(ctx context.Context) ([]*domain.ReminderView, error) {
	return u.reminderRepo.ListPending(ctx)
}

func (u *reminderUsecase) ListUpcoming(ctx context.Context, windowDays int) ([]*domain.ReminderView, error) {
	if windowDays <= 0 {
		windowDays = u.defaultWindow
	}
	today := u.today()
	return u.reminderRepo.ListPendingDueBetween(ctx, today, dateutil.AddDays(today, windowDays))
}

func (u *reminderUsecase) MarkSent(ctx context.Context, id string) error {
	if id == "" {
		return apperror.Validation("reminder id is required")
	}
	return u.reminderRepo.MarkSent(ctx, id, u.now())
}
