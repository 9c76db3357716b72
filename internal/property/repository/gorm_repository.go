package repository

import (
	"context"
	"errors"
	"time"

	"rentdesk-backend/internal/property/domain"
	"rentdesk-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a GORM-backed PropertyRepository
func NewGormPropertyRepository(db *gorm.DB) PropertyRepository {
	return &gormPropertyRepository{db: db}
}

func (r *gormPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now
	return apperror.DataStore("property.create", r.db.WithContext(ctx).Create(property).Error)
}

func (r *gormPropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var property domain.Property
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.DataStore("property.find", err)
	}
	return &property, nil
}

func (r *gormPropertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	var properties []*domain.Property
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, apperror.DataStore("property.list", err)
	}
	return properties, nil
}

func (r *gormPropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	property.UpdatedAt = time.Now()
	return apperror.DataStore("property.update", r.db.WithContext(ctx).Save(property).Error)
}

func (r *gormPropertyRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Property{}, "id = ?", id)
	if res.Error != nil {
		return false, apperror.DataStore("property.delete", res.Error)
	}
	return res.RowsAffected > 0, nil
}
