package repository

import (
	"context"
	"errors"
	"time"

	"rentdesk-backend/internal/tenant/domain"
	"rentdesk-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a GORM-backed TenantRepository
func NewGormTenantRepository(db *gorm.DB) TenantRepository {
	return &gormTenantRepository{db: db}
}

func (r *gormTenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	now := time.Now()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now
	return apperror.DataStore("tenant.create", r.db.WithContext(ctx).Create(tenant).Error)
}

func (r *gormTenantRepository) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.DataStore("tenant.find", err)
	}
	return &tenant, nil
}

func (r *gormTenantRepository) List(ctx context.Context) ([]*domain.Tenant, error) {
	var tenants []*domain.Tenant
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tenants).Error
	if err != nil {
		return nil, apperror.DataStore("tenant.list", err)
	}
	return tenants, nil
}

func (r *gormTenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	tenant.UpdatedAt = time.Now()
	return apperror.DataStore("tenant.update", r.db.WithContext(ctx).Save(tenant).Error)
}

func (r *gormTenantRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Tenant{}, "id = ?", id)
	if res.Error != nil {
		return false, apperror.DataStore("tenant.delete", res.Error)
	}
	return res.RowsAffected > 0, nil
}
