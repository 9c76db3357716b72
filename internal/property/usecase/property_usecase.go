package usecase

import (
	"context"
	"strings"

	"rentdesk-backend/internal/property/domain"
	"rentdesk-backend/internal/property/repository"
	"rentdesk-backend/pkg/apperror"
)

type propertyUsecase struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyUsecase creates a new instance of propertyUsecase
func NewPropertyUsecase(propertyRepo repository.PropertyRepository) PropertyUsecase {
	return &propertyUsecase{propertyRepo: propertyRepo}
}

func (u *propertyUsecase) CreateProperty(ctx context.Context, input PropertyInput) (*domain.Property, error) {
	property := &domain.Property{}
	if err := apply(property, input); err != nil {
		return nil, err
	}
	if property.Status == "" {
		property.Status = domain.StatusAvailable
	}
	if err := u.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (u *propertyUsecase) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	property, err := u.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NotFound("property")
	}
	return property, nil
}

func (u *propertyUsecase) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	return u.propertyRepo.List(ctx)
}

func (u *propertyUsecase) UpdateProperty(ctx context.Context, id string, input PropertyInput) (*domain.Property, error) {
	property, err := u.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	status := property.Status
	if err := apply(property, input); err != nil {
		return nil, err
	}
	if property.Status == "" {
		property.Status = status
	}
	if err := u.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (u *propertyUsecase) DeleteProperty(ctx context.Context, id string) error {
	deleted, err := u.propertyRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("property")
	}
	return nil
}

func apply(property *domain.Property, input PropertyInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.PropertyType == "" || input.Address == "" {
		return apperror.Validation("property_name, property_type and address are required")
	}
	if input.MonthlyRent <= 0 {
		return apperror.Validation("monthly_rent must be greater than zero")
	}
	status := domain.Status(input.Status)
	if status != "" && !status.Valid() {
		return apperror.Validation("status must be available or occupied")
	}

	property.Name = name
	property.PropertyType = input.PropertyType
	property.Address = input.Address
	property.City = input.City
	property.State = input.State
	property.RoomNumber = input.RoomNumber
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.MonthlyRent = input.MonthlyRent
	property.SecurityDeposit = input.SecurityDeposit
	property.Amenities = input.Amenities
	property.Status = status
	return nil
}
