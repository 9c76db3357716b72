package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"rentdesk-backend/internal/reminder/usecase"
	"rentdesk-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingUsecase struct {
	usecase.ReminderUsecase
	calls atomic.Int32
	err   error
}

func (c *countingUsecase) GenerateReminders(ctx context.Context) (usecase.GenerateResult, error) {
	c.calls.Add(1)
	return usecase.GenerateResult{RentDue: 1}, c.err
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	uc := &countingUsecase{}
	s := NewReminderScheduler(uc, 10*time.Millisecond, zap.NewNop())

	s.Start()
	assert.Eventually(t, func() bool { return uc.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := uc.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, uc.calls.Load())
}

func TestScheduler_DisabledWithZeroInterval(t *testing.T) {
	uc := &countingUsecase{}
	s := NewReminderScheduler(uc, 0, zap.NewNop())

	s.Start()
	s.Stop()
	assert.Zero(t, uc.calls.Load())
}

func TestScheduler_KeepsRunningAfterErrors(t *testing.T) {
	uc := &countingUsecase{err: apperror.Conflict("busy")}
	s := NewReminderScheduler(uc, 5*time.Millisecond, zap.NewNop())

	s.Start()
	assert.Eventually(t, func() bool { return uc.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()
	s.Stop()
}
