package storage

import (
	"context"
	"testing"

	"rentdesk-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Storage_Key(t *testing.T) {
	assert.Equal(t, "2026/03/a.pdf", (&S3Storage{}).key("2026/03/a.pdf"))
	assert.Equal(t, "documents/2026/03/a.pdf", (&S3Storage{prefix: "documents"}).key("2026/03/a.pdf"))
	assert.Equal(t, "documents/a.pdf", (&S3Storage{prefix: "documents/"}).key("a.pdf"))
}

func TestNew_S3RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), &config.Config{StorageBackend: "s3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestNew_S3(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	store, err := New(context.Background(), &config.Config{StorageBackend: "s3", S3Bucket: "rentdesk", S3Prefix: "docs"})
	require.NoError(t, err)
	s3Store, ok := store.(*S3Storage)
	require.True(t, ok)
	assert.Equal(t, "rentdesk", s3Store.bucket)
}
