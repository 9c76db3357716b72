//go:build integration

package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := NewRedisClient(endpoint, "", 0)
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err())

	a := NewRedisLocker(client, time.Minute, zap.NewNop())
	b := NewRedisLocker(client, time.Minute, zap.NewNop())

	release, err := a.Acquire(ctx, "reminders")
	require.NoError(t, err)

	_, err = b.Acquire(ctx, "reminders")
	assert.ErrorIs(t, err, ErrLocked)

	release()
	release()

	releaseB, err := b.Acquire(ctx, "reminders")
	require.NoError(t, err)
	releaseB()

	short := NewRedisLocker(client, 50*time.Millisecond, zap.NewNop())
	_, err = short.Acquire(ctx, "expiring")
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		release, err := b.Acquire(ctx, "expiring")
		if err != nil {
			return false
		}
		release()
		return true
	}, 2*time.Second, 20*time.Millisecond)
}
