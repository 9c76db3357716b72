//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	leasedomain "rentdesk-backend/internal/lease/domain"
	propertydomain "rentdesk-backend/internal/property/domain"
	"rentdesk-backend/internal/reminder/repository"
	"rentdesk-backend/internal/reminder/usecase"
	"rentdesk-backend/internal/schema"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
	"rentdesk-backend/internal/testutil"
	"rentdesk-backend/pkg/database"
	"rentdesk-backend/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func TestReminderEngineOnPostgres(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("rentdesk"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2)),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewPostgresConnection(connStr)
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, schema.Migrate(db))

	today := testutil.Date(2026, time.March, 10)
	tenant := testutil.CreateTenant(t, db, "Zoe", tenantdomain.StatusActive)
	property := testutil.CreateProperty(t, db, "Quay 9", propertydomain.StatusOccupied)
	testutil.CreateLease(t, db, tenant.ID, property.ID, testutil.Date(2025, time.April, 1), today.AddDate(0, 0, 20), 15, leasedomain.StatusActive)

	repo := repository.NewGormReminderRepository(db)
	uc := usecase.NewReminderUsecase(repo, lock.NewLocalLocker(), zap.NewNop(), usecase.WithClock(testutil.Clock(today)))

	t.Run("Generate is idempotent", func(t *testing.T) {
		first, err := uc.GenerateReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.RentDue)
		assert.Equal(t, 1, first.LeaseExpiry)

		again, err := uc.GenerateReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, again.Total())
	})

	t.Run("Listings join tenant and property", func(t *testing.T) {
		pending, err := uc.ListPending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, "Zoe Tester", pending[0].TenantName)

		upcoming, err := uc.ListUpcoming(ctx, 30)
		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Equal(t, "Quay 9", upcoming[0].PropertyName)
	})
}
