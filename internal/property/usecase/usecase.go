package usecase

import (
	"context"

	"rentdesk-backend/internal/property/domain"
)

// PropertyUsecase defines the business operations on properties
type PropertyUsecase interface {
	CreateProperty(ctx context.Context, input PropertyInput) (*domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]*domain.Property, error)
	UpdateProperty(ctx context.Context, id string, input PropertyInput) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

// PropertyInput carries the editable property fields
type PropertyInput struct {
	Name            string  `json:"property_name" binding:"required"`
	PropertyType    string  `json:"property_type" binding:"required"`
	Address         string  `json:"address" binding:"required"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	RoomNumber      string  `json:"room_number"`
	Bedrooms        int     `json:"bedrooms" binding:"gte=0"`
	Bathrooms       float64 `json:"bathrooms" binding:"gte=0"`
	MonthlyRent     float64 `json:"monthly_rent" binding:"required,gt=0"`
	SecurityDeposit float64 `json:"security_deposit" binding:"gte=0"`
	Amenities       string  `json:"amenities"`
	Status          string  `json:"status"`
}
