package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"rentdesk-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "tenants/t1/lease.pdf", strings.NewReader("signed"), 6, "application/pdf"))

	rc, err := s.Open(ctx, "tenants/t1/lease.pdf")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "signed", string(data))

	require.NoError(t, s.Delete(ctx, "tenants/t1/lease.pdf"))
	_, err = s.Open(ctx, "tenants/t1/lease.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, "tenants/t1/lease.pdf"))
}

func TestLocalStorage_KeysStayInsideBase(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(base)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "../../escape.txt", strings.NewReader("x"), 1, ""))
	rc, err := s.Open(ctx, "escape.txt")
	require.NoError(t, err)
	rc.Close()
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), &config.Config{StorageBackend: "ftp"})
	assert.Error(t, err)
}
