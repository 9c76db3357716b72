package database

import (
	"path/filepath"
	"testing"

	"rentdesk-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteConnection_SingleConnection(t *testing.T) {
	db, err := NewSQLiteConnection(filepath.Join(t.TempDir(), "rentdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(&config.Config{DBDriver: "mysql"})
	assert.Error(t, err)
}

func TestNewPostgresConnection_RequiresDSN(t *testing.T) {
	_, err := NewPostgresConnection("")
	assert.Error(t, err)
}
