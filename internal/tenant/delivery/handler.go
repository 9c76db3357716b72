package delivery

import (
	"net/http"

	"rentdesk-backend/internal/tenant/usecase"
	"rentdesk-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TenantHandler handles tenant-related HTTP requests
type TenantHandler struct {
	tenantUsecase usecase.TenantUsecase
	log           *zap.Logger
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantUsecase usecase.TenantUsecase, log *zap.Logger) *TenantHandler {
	return &TenantHandler{tenantUsecase: tenantUsecase, log: log}
}

// ListTenants returns all tenants
// GET /api/tenants
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.tenantUsecase.ListTenants(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// GetTenant returns a single tenant
// GET /api/tenants/:id
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.tenantUsecase.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// CreateTenant registers a new tenant
// POST /api/tenants
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req usecase.TenantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BindError(c, err)
		return
	}

	tenant, err := h.tenantUsecase.CreateTenant(c.Request.Context(), req)
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"tenant_id": tenant.ID,
		"tenant":    tenant,
		"message":   "Tenant created successfully",
	})
}

// UpdateTenant replaces a tenant's details
// PUT /api/tenants/:id
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req usecase.TenantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BindError(c, err)
		return
	}

	tenant, err := h.tenantUsecase.UpdateTenant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tenant": tenant, "message": "Tenant updated successfully"})
}

// DeleteTenant removes a tenant
// DELETE /api/tenants/:id
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.tenantUsecase.DeleteTenant(c.Request.Context(), c.Param("id")); err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tenant deleted successfully"})
}
