package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"rentdesk-backend/internal/document/domain"
	"rentdesk-backend/internal/document/repository"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
	"rentdesk-backend/internal/testutil"
	"rentdesk-backend/pkg/apperror"
	"rentdesk-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingStorage remembers the keys written through it
type recordingStorage struct {
	storage.Storage
	keys []string
}

func (s *recordingStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	s.keys = append(s.keys, key)
	return s.Storage.Put(ctx, key, body, size, contentType)
}

// failingRepository rejects every insert
type failingRepository struct {
	repository.DocumentRepository
}

func (failingRepository) Create(ctx context.Context, doc *domain.Document) error {
	return apperror.DataStore("document.create", errors.New("disk full"))
}

func newStore(t *testing.T) *recordingStorage {
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return &recordingStorage{Storage: local}
}

func TestUploadOpenDelete(t *testing.T) {
	db := testutil.NewDB(t)
	tenant := testutil.CreateTenant(t, db, "Vic", tenantdomain.StatusActive)
	store := newStore(t)
	uc := NewDocumentUsecase(repository.NewGormDocumentRepository(db), store, zap.NewNop())

	doc, err := uc.Upload(context.Background(), UploadInput{
		TenantID:     tenant.ID,
		DocumentType: "id_card",
		FileName:     "../passport scan.pdf",
		FileSize:     5,
		ContentType:  "application/pdf",
		Body:         strings.NewReader("%PDF-"),
	})
	require.NoError(t, err)
	assert.Equal(t, "passport scan.pdf", doc.DocumentName)
	assert.True(t, strings.HasSuffix(doc.StorageKey, "-passport_scan.pdf"))
	require.NotNil(t, doc.TenantID)
	assert.Nil(t, doc.LeaseID)

	listed, err := uc.ListTenantDocuments(context.Background(), tenant.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got, body, err := uc.Open(context.Background(), doc.ID)
	require.NoError(t, err)
	content, err := io.ReadAll(body)
	require.NoError(t, body.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(content))
	assert.Equal(t, doc.ID, got.ID)

	require.NoError(t, uc.DeleteDocument(context.Background(), doc.ID))
	_, err = store.Open(context.Background(), doc.StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, _, err = uc.Open(context.Background(), doc.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(uc.DeleteDocument(context.Background(), doc.ID)))
}

func TestUpload_RequiresFile(t *testing.T) {
	uc := NewDocumentUsecase(failingRepository{}, newStore(t), zap.NewNop())

	_, err := uc.Upload(context.Background(), UploadInput{DocumentType: "lease"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, "No file uploaded", apperror.Message(err))
}

func TestUpload_RemovesFileWhenMetadataFails(t *testing.T) {
	store := newStore(t)
	uc := NewDocumentUsecase(failingRepository{}, store, zap.NewNop())

	_, err := uc.Upload(context.Background(), UploadInput{
		DocumentType: "lease",
		FileName:     "lease.pdf",
		FileSize:     3,
		Body:         strings.NewReader("abc"),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindDataStore, apperror.KindOf(err))

	require.Len(t, store.keys, 1)
	_, err = store.Open(context.Background(), store.keys[0])
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "my_lease__2026_.pdf", sanitize("my lease (2026).pdf"))
}
