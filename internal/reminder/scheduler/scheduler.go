package scheduler

import (
	"context"
	"sync"
	"time"

	"rentdesk-backend/internal/reminder/usecase"
	"rentdesk-backend/pkg/apperror"

	"go.uber.org/zap"
)

// ReminderScheduler runs reminder generation on a fixed interval
type ReminderScheduler struct {
	reminderUsecase usecase.ReminderUsecase
	interval        time.Duration
	log             *zap.Logger
	stopChan        chan struct{}
	stopOnce        sync.Once
	done            chan struct{}
}

// NewReminderScheduler creates a new scheduler. A zero interval disables it.
func NewReminderScheduler(reminderUsecase usecase.ReminderUsecase, interval time.Duration, log *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		reminderUsecase: reminderUsecase,
		interval:        interval,
		log:             log,
		stopChan:        make(chan struct{}),
		done:            make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *ReminderScheduler) Start() {
	if s.interval <= 0 {
		s.log.Info("Reminder scheduler disabled")
		close(s.done)
		return
	}

	s.log.Info("Starting reminder scheduler", zap.Duration("interval", s.interval))

	go func() {
		defer close(s.done)

		// Run immediately on start
		s.generate()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.generate()
			case <-s.stopChan:
				s.log.Info("Reminder scheduler stopped")
				return
			}
		}
	}()
}

// Stop signals the loop to exit and waits for an in-flight run to finish
func (s *ReminderScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	<-s.done
}

func (s *ReminderScheduler) generate() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.stopChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	result, err := s.reminderUsecase.GenerateReminders(ctx)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindConflict {
			s.log.Debug("Reminder generation skipped, another run holds the lock")
			return
		}
		s.log.Error("Reminder generation failed", zap.Error(err))
		return
	}
	if result.Total() > 0 {
		s.log.Info("Scheduled reminder generation created reminders", zap.Int("created", result.Total()))
	}
}
