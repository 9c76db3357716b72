package usecase_test

import (
	"context"
	"testing"

	"rentdesk-backend/internal/lease/domain"
	"rentdesk-backend/internal/lease/repository"
	"rentdesk-backend/internal/lease/usecase"
	propertydomain "rentdesk-backend/internal/property/domain"
	tenantdomain "rentdesk-backend/internal/tenant/domain"
	"rentdesk-backend/internal/testutil"
	"rentdesk-backend/pkg/apperror"
	"rentdesk-backend/pkg/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, usecase.LeaseUsecase, usecase.CreateLeaseInput) {
	db := testutil.NewDB(t)
	tenant := testutil.CreateTenant(t, db, "Gia", tenantdomain.StatusActive)
	property := testutil.CreateProperty(t, db, "Birch Row", propertydomain.StatusAvailable)
	input := usecase.CreateLeaseInput{
		TenantID:   tenant.ID,
		PropertyID: property.ID,
		StartDate:  "2026-01-01",
		EndDate:    "2026-12-31",
		RentAmount: 1100,
	}
	return db, usecase.NewLeaseUsecase(repository.NewGormLeaseRepository(db), zap.NewNop()), input
}

func TestCreateLease(t *testing.T) {
	db, uc, input := setup(t)

	lease, err := uc.CreateLease(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, lease.Status)
	assert.Equal(t, 1, lease.PaymentDueDay)
	assert.Equal(t, "2026-12-31", dateutil.Format(lease.EndDate))

	var property propertydomain.Property
	require.NoError(t, db.First(&property, "id = ?", input.PropertyID).Error)
	assert.Equal(t, propertydomain.StatusOccupied, property.Status)
}

func TestCreateLease_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.CreateLeaseInput)
		kind   apperror.Kind
	}{
		{"bad start date", func(in *usecase.CreateLeaseInput) { in.StartDate = "01/01/2026" }, apperror.KindValidation},
		{"end before start", func(in *usecase.CreateLeaseInput) { in.EndDate = "2025-12-01" }, apperror.KindValidation},
		{"end equals start", func(in *usecase.CreateLeaseInput) { in.EndDate = in.StartDate }, apperror.KindValidation},
		{"zero rent", func(in *usecase.CreateLeaseInput) { in.RentAmount = 0 }, apperror.KindValidation},
		{"due day too large", func(in *usecase.CreateLeaseInput) { in.PaymentDueDay = 32 }, apperror.KindValidation},
		{"negative due day", func(in *usecase.CreateLeaseInput) { in.PaymentDueDay = -1 }, apperror.KindValidation},
		{"unknown tenant", func(in *usecase.CreateLeaseInput) { in.TenantID = "ghost" }, apperror.KindNotFound},
		{"unknown property", func(in *usecase.CreateLeaseInput) { in.PropertyID = "ghost" }, apperror.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc, input := setup(t)
			tt.mutate(&input)

			_, err := uc.CreateLease(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
		})
	}
}

func TestSetLeaseStatus(t *testing.T) {
	db, uc, input := setup(t)
	lease, err := uc.CreateLease(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.SetLeaseStatus(context.Background(), lease.ID, "paused")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	updated, err := uc.SetLeaseStatus(context.Background(), lease.ID, "terminated")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTerminated, updated.Status)

	var property propertydomain.Property
	require.NoError(t, db.First(&property, "id = ?", input.PropertyID).Error)
	assert.Equal(t, propertydomain.StatusAvailable, property.Status)
}

func TestGetLease_NotFound(t *testing.T) {
	_, uc, _ := setup(t)
	_, err := uc.GetLease(context.Background(), "missing")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
