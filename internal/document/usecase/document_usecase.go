package usecase

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"rentdesk-backend/internal/document/domain"
	"rentdesk-backend/internal/document/repository"
	"rentdesk-backend/pkg/apperror"
	"rentdesk-backend/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type documentUsecase struct {
	docRepo repository.DocumentRepository
	store   storage.Storage
	log     *zap.Logger
}

// NewDocumentUsecase creates a new instance of documentUsecase
func NewDocumentUsecase(docRepo repository.DocumentRepository, store storage.Storage, log *zap.Logger) DocumentUsecase {
	return &documentUsecase{docRepo: docRepo, store: store, log: log}
}

func (u *documentUsecase) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	if input.Body == nil || input.FileName == "" {
		return nil, apperror.Validation("No file uploaded")
	}
	if input.DocumentType == "" {
		return nil, apperror.Validation("document_type is required")
	}

	now := time.Now()
	name := filepath.Base(input.FileName)
	key := now.Format("2006/01/") + uuid.New().String() + "-" + sanitize(name)

	if err := u.store.Put(ctx, key, input.Body, input.FileSize, input.ContentType); err != nil {
		return nil, apperror.DataStore("document.store", err)
	}

	doc := &domain.Document{
		LeaseID:      optional(input.LeaseID),
		TenantID:     optional(input.TenantID),
		PropertyID:   optional(input.PropertyID),
		DocumentType: input.DocumentType,
		DocumentName: name,
		StorageKey:   key,
		FileSize:     input.FileSize,
		FileType:     input.ContentType,
		UploadDate:   now,
		UploadedBy:   input.UploadedBy,
		Description:  input.Description,
	}
	if err := u.docRepo.Create(ctx, doc); err != nil {
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			u.log.Warn("failed to remove orphaned upload", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}
	return doc, nil
}

func (u *documentUsecase) ListDocuments(ctx context.Context) ([]*domain.Document, error) {
	return u.docRepo.List(ctx)
}

func (u *documentUsecase) ListTenantDocuments(ctx context.Context, tenantID string) ([]*domain.Document, error) {
	return u.docRepo.ListByTenant(ctx, tenantID)
}

func (u *documentUsecase) Open(ctx context.Context, id string) (*domain.Document, io.ReadCloser, error) {
	doc, err := u.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	body, err := u.store.Open(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, apperror.NotFound("document file")
		}
		return nil, nil, apperror.DataStore("document.open", err)
	}
	return doc, body, nil
}

func (u *documentUsecase) DeleteDocument(ctx context.Context, id string) error {
	doc, err := u.find(ctx, id)
	if err != nil {
		return err
	}
	if err := u.store.Delete(ctx, doc.StorageKey); err != nil {
		return apperror.DataStore("document.remove_file", err)
	}
	return u.docRepo.Delete(ctx, id)
}

func (u *documentUsecase) find(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := u.docRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NotFound("document")
	}
	return doc, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// sanitize keeps file names safe to use inside object keys
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
