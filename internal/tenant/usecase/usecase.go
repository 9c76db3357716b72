package usecase

import (
	"context"

	"rentdesk-backend/internal/tenant/domain"
)

// TenantUsecase defines the business operations on tenants
type TenantUsecase interface {
	CreateTenant(ctx context.Context, input TenantInput) (*domain.Tenant, error)
	GetTenant(ctx context.Context, id string) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]*domain.Tenant, error)
	// UpdateTenant replaces every editable field of the tenant
	UpdateTenant(ctx context.Context, id string, input TenantInput) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
}

// TenantInput carries the editable tenant fields. Dates are YYYY-MM-DD.
type TenantInput struct {
	FirstName             string `json:"first_name" binding:"required"`
	LastName              string `json:"last_name" binding:"required"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	NationalID            string `json:"national_id"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	DateOfBirth           string `json:"date_of_birth"`
	Occupation            string `json:"occupation"`
	Status                string `json:"status"`
}
