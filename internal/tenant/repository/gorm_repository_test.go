package repository

import (
	"context"
	"errors"
	"testing"

	"rentdesk-backend/internal/tenant/domain"
	"rentdesk-backend/pkg/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, TenantRepository) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, NewGormTenantRepository(db)
}

func TestFindByID_QueryErrorIsDataStore(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "tenants"`).
		WillReturnError(errors.New("connection refused"))

	tenant, err := repo.FindByID(context.Background(), "t-1")

	assert.Nil(t, tenant)
	require.Error(t, err)
	assert.Equal(t, apperror.KindDataStore, apperror.KindOf(err))
	assert.Equal(t, "connection refused", apperror.Message(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NoRows(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "tenants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tenant, err := repo.FindByID(context.Background(), "t-1")

	assert.NoError(t, err)
	assert.Nil(t, tenant)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NewestFirst(t *testing.T) {
	mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "status"}).
		AddRow("t-2", "Noa", "Park", "active").
		AddRow("t-1", "Oli", "Reed", "inactive")
	mock.ExpectQuery(`SELECT \* FROM "tenants" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	tenants, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "t-2", tenants[0].ID)
	assert.Equal(t, domain.StatusInactive, tenants[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NoRowsAffected(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tenants"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.Delete(context.Background(), "t-9")

	require.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
