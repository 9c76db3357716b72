package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLocker()

	release, err := l.Acquire(ctx, "reminders")
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "reminders")
	assert.ErrorIs(t, err, ErrLocked)

	other, err := l.Acquire(ctx, "exports")
	require.NoError(t, err)
	other()

	release()
	release() // second call is a no-op

	again, err := l.Acquire(ctx, "reminders")
	require.NoError(t, err)
	again()
}

func TestLocalLocker_OneWinner(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLocker()

	var winners int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	releases := make(chan func(), 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if release, err := l.Acquire(ctx, "job"); err == nil {
				atomic.AddInt32(&winners, 1)
				releases <- release
			}
		}()
	}
	close(start)
	wg.Wait()
	close(releases)

	assert.Equal(t, int32(1), winners)
	for release := range releases {
		release()
	}
}
