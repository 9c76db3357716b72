package usecase

import (
	"context"
	"strings"

	"rentdesk-backend/internal/tenant/domain"
	"rentdesk-backend/internal/tenant/repository"
	"rentdesk-backend/pkg/apperror"
	"rentdesk-backend/pkg/dateutil"
)

type tenantUsecase struct {
	tenantRepo repository.TenantRepository
}

// NewTenantUsecase creates a new instance of tenantUsecase
func NewTenantUsecase(tenantRepo repository.TenantRepository) TenantUsecase {
	return &tenantUsecase{tenantRepo: tenantRepo}
}

func (u *tenantUsecase) CreateTenant(ctx context.Context, input TenantInput) (*domain.Tenant, error) {
	tenant := &domain.Tenant{}
	if err := apply(tenant, input); err != nil {
		return nil, err
	}
	if tenant.Status == "" {
		tenant.Status = domain.StatusActive
	}
	if err := u.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (u *tenantUsecase) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := u.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NotFound("tenant")
	}
	return tenant, nil
}

func (u *tenantUsecase) ListTenants(ctx context.Context) ([]*domain.Tenant, error) {
	return u.tenantRepo.List(ctx)
}

func (u *tenantUsecase) UpdateTenant(ctx context.Context, id string, input TenantInput) (*domain.Tenant, error) {
	tenant, err := u.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	status := tenant.Status
	if err := apply(tenant, input); err != nil {
		return nil, err
	}
	if tenant.Status == "" {
		tenant.Status = status
	}
	if err := u.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (u *tenantUsecase) DeleteTenant(ctx context.Context, id string) error {
	deleted, err := u.tenantRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("tenant")
	}
	return nil
}

func apply(tenant *domain.Tenant, input TenantInput) error {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return apperror.Validation("first_name and last_name are required")
	}

	dob, err := dateutil.ParseOptional(input.DateOfBirth)
	if err != nil {
		return apperror.Validation("date_of_birth: %v", err)
	}

	status := domain.Status(input.Status)
	if status != "" && !status.Valid() {
		return apperror.Validation("status must be active or inactive")
	}

	tenant.FirstName = firstName
	tenant.LastName = lastName
	tenant.Email = nil
	if email := strings.TrimSpace(input.Email); email != "" {
		tenant.Email = &email
	}
	tenant.Phone = input.Phone
	tenant.NationalID = input.NationalID
	tenant.EmergencyContactName = input.EmergencyContactName
	tenant.EmergencyContactPhone = input.EmergencyContactPhone
	tenant.DateOfBirth = dob
	tenant.Occupation = input.Occupation
	tenant.Status = status
	return nil
}
