package repository

import (
	"context"
	"errors"
	"time"

	"rentdesk-backend/internal/document/domain"
	"rentdesk-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a GORM-backed DocumentRepository
func NewGormDocumentRepository(db *gorm.DB) DocumentRepository {
	return &gormDocumentRepository{db: db}
}

func (r *gormDocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.UploadDate.IsZero() {
		doc.UploadDate = time.Now()
	}
	return apperror.DataStore("document.create", r.db.WithContext(ctx).Create(doc).Error)
}

func (r *gormDocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.DataStore("document.find", err)
	}
	return &doc, nil
}

func (r *gormDocumentRepository) List(ctx context.Context) ([]*domain.Document, error) {
	var docs []*domain.Document
	if err := r.db.WithContext(ctx).Order("upload_date DESC").Find(&docs).Error; err != nil {
		return nil, apperror.DataStore("document.list", err)
	}
	return docs, nil
}

func (r *gormDocumentRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Document, error) {
	var docs []*domain.Document
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("upload_date DESC").Find(&docs).Error
	if err != nil {
		return nil, apperror.DataStore("document.list_by_tenant", err)
	}
	return docs, nil
}

func (r *gormDocumentRepository) Delete(ctx context.Context, id string) error {
	return apperror.DataStore("document.delete", r.db.WithContext(ctx).Delete(&domain.Document{}, "id = ?", id).Error)
}
