package repository

import (
	"context"
	"errors"
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	"rentdesk-backend/internal/reminder/domain"
	"rentdesk-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const reminderViewColumns = "r.*, t.first_name || ' ' || t.last_name AS tenant_name, COALESCE(t.phone, '') AS phone, COALESCE(t.email, '') AS email"

type gormReminderRepository struct {
	db *gorm.DB
}

// NewGormReminderRepository creates a GORM-backed ReminderRepository
func NewGormReminderRepository(db *gorm.DB) ReminderRepository {
	return &gormReminderRepository{db: db}
}

func (r *gormReminderRepository) Transaction(ctx context.Context, fn func(tx ReminderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormReminderRepository{db: tx})
	})
}

func (r *gormReminderRepository) ActiveLeases(ctx context.Context, endingBy *time.Time) ([]*leasedomain.Lease, error) {
	var leases []*leasedomain.Lease
	query := r.db.WithContext(ctx).Where("status = ?", leasedomain.StatusActive)
	if endingBy != nil {
		query = query.Where("end_date <= ?", *endingBy)
	}
	if err := query.Order("created_at ASC").Find(&leases).Error; err != nil {
		return nil, apperror.DataStore("reminder.active_leases", err)
	}
	return leases, nil
}

func (r *gormReminderRepository) ExistsDueBetween(ctx context.Context, leaseID string, reminderType domain.Type, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Reminder{}).
		Where("lease_id = ? AND reminder_type = ? AND due_date >= ? AND due_date < ?", leaseID, reminderType, from, to).
		Count(&count).Error
	if err != nil {
		return false, apperror.DataStore("reminder.exists", err)
	}
	return count > 0, nil
}

func (r *gormReminderRepository) ExistsForLease(ctx context.Context, leaseID string, reminderType domain.Type) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Reminder{}).
		Where("lease_id = ? AND reminder_type = ?", leaseID, reminderType).
		Count(&count).Error
	if err != nil {
		return false, apperror.DataStore("reminder.exists", err)
	}
	return count > 0, nil
}

func (r *gormReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	reminder.CreatedAt = time.Now()
	return apperror.DataStore("reminder.create", r.db.WithContext(ctx).Create(reminder).Error)
}

func (r *gormReminderRepository) FindByID(ctx context.Context, id string) (*domain.Reminder, error) {
	var reminder domain.Reminder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.DataStore("reminder.find", err)
	}
	return &reminder, nil
}

func (r *gormReminderRepository) ListPending(ctx context.Context) ([]*domain.ReminderView, error) {
	var reminders []*domain.ReminderView
	err := r.db.WithContext(ctx).
		Table("reminders AS r").
		Select(reminderViewColumns).
		Joins("JOIN tenants t ON r.tenant_id = t.id").
		Where("r.status = ?", domain.StatusPending).
		Order("r.due_date ASC").
		Scan(&reminders).Error
	if err != nil {
		return nil, apperror.DataStore("reminder.list_pending", err)
	}
	return reminders, nil
}

func (r *gormReminderRepository) ListPendingDueBetween(ctx context.Context, from, to time.Time) ([]*domain.ReminderView, error) {
	var reminders []*domain.ReminderView
	err := r.db.WithContext(ctx).
		Table("reminders AS r").
		Select(reminderViewColumns+", p.property_name").
		Joins("JOIN tenants t ON r.tenant_id = t.id").
		Joins("JOIN leases l ON r.lease_id = l.id").
		Joins("JOIN properties p ON l.property_id = p.id").
		Where("r.status = ? AND r.due_date >= ? AND r.due_date <= ?", domain.StatusPending, from, to).
		Order("r.due_date ASC").
		Scan(&reminders).Error
	if err != nil {
		return nil, apperror.DataStore("reminder.list_upcoming", err)
	}
	return reminders, nil
}

func (r *gormReminderRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	err := r.db.WithContext(ctx).Model(&domain.Reminder{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_sent": true,
			"status":  domain.StatusSent,
			"sent_at": sentAt,
		}).Error
	return apperror.DataStore("reminder.mark_sent", err)
}
