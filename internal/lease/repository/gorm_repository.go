package repository

import (
	"context"
	"errors"
	"time"

	"rentdesk-backend/internal/lease/domain"
	propertydomain "rentdesk-backend/internal/property/domain"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
	"rentdesk-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormLeaseRepository struct {
	db *gorm.DB
}

// NewGormLeaseRepository creates a GORM-backed LeaseRepository
func NewGormLeaseRepository(db *gorm.DB) LeaseRepository {
	return &gormLeaseRepository{db: db}
}

func (r *gormLeaseRepository) CreateWithOccupancy(ctx context.Context, lease *domain.Lease) error {
	if lease.ID == "" {
		lease.ID = uuid.New().String()
	}
	now := time.Now()
	lease.CreatedAt = now
	lease.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &tenantdomain.Tenant{}, lease.TenantID, "tenant"); err != nil {
			return err
		}
		if err := mustExist(tx, &propertydomain.Property{}, lease.PropertyID, "property"); err != nil {
			return err
		}
		if err := tx.Create(lease).Error; err != nil {
			return err
		}
		return setPropertyStatus(tx, lease.PropertyID, propertydomain.StatusOccupied)
	})
	return apperror.DataStore("lease.create", err)
}

func (r *gormLeaseRepository) FindByID(ctx context.Context, id string) (*domain.Lease, error) {
	var lease domain.Lease
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lease).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.DataStore("lease.find", err)
	}
	return &lease, nil
}

func (r *gormLeaseRepository) List(ctx context.Context) ([]*domain.LeaseView, error) {
	var leases []*domain.LeaseView
	err := r.db.WithContext(ctx).
		Table("leases AS l").
		Select("l.*, t.first_name || ' ' || t.last_name AS tenant_name, p.property_name, p.address").
		Joins("JOIN tenants t ON l.tenant_id = t.id").
		Joins("JOIN properties p ON l.property_id = p.id").
		Order("l.created_at DESC").
		Scan(&leases).Error
	if err != nil {
		return nil, apperror.DataStore("lease.list", err)
	}
	return leases, nil
}

func (r *gormLeaseRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Lease, error) {
	var lease domain.Lease
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&lease).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("lease")
			}
			return err
		}

		lease.Status = status
		lease.UpdatedAt = time.Now()
		if err := tx.Model(&domain.Lease{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": lease.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		if status == domain.StatusActive {
			return setPropertyStatus(tx, lease.PropertyID, propertydomain.StatusOccupied)
		}

		var stillActive int64
		if err := tx.Model(&domain.Lease{}).
			Where("property_id = ? AND status = ?", lease.PropertyID, domain.StatusActive).
			Count(&stillActive).Error; err != nil {
			return err
		}
		if stillActive > 0 {
			return nil
		}
		return setPropertyStatus(tx, lease.PropertyID, propertydomain.StatusAvailable)
	})
	if err != nil {
		return nil, apperror.DataStore("lease.update_status", err)
	}
	return &lease, nil
}

func mustExist(tx *gorm.DB, model interface{}, id, entity string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperror.NotFound(entity)
	}
	return nil
}

func setPropertyStatus(tx *gorm.DB, propertyID string, status propertydomain.Status) error {
	return tx.Model(&propertydomain.Property{}).Where("id = ?", propertyID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
