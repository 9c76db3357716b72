package delivery

import (
	"net/http"

	"rentdesk-backend/internal/lease/domain"
	"rentdesk-backend/internal/lease/usecase"
	"rentdesk-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeaseHandler handles lease-related HTTP requests
type LeaseHandler struct {
	leaseUsecase usecase.LeaseUsecase
	log          *zap.Logger
}

// NewLeaseHandler creates a new LeaseHandler
func NewLeaseHandler(leaseUsecase usecase.LeaseUsecase, log *zap.Logger) *LeaseHandler {
	return &LeaseHandler{leaseUsecase: leaseUsecase, log: log}
}

// UpdateLeaseRequest is the body of PUT /api/leases/:id. lease_status is
// accepted as well as status.
type UpdateLeaseRequest struct {
	Status      string `json:"status"`
	LeaseStatus string `json:"lease_status"`
}

// ListLeases returns all leases with tenant and property names
// GET /api/leases
func (h *LeaseHandler) ListLeases(c *gin.Context) {
	leases, err := h.leaseUsecase.ListLeases(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	if leases == nil {
		leases = []*domain.LeaseView{}
	}
	c.JSON(http.StatusOK, leases)
}

// GetLease returns a single lease
// GET /api/leases/:id
func (h *LeaseHandler) GetLease(c *gin.Context) {
	lease, err := h.leaseUsecase.GetLease(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, lease)
}

// CreateLease creates a lease and marks the property occupied
// POST /api/leases
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	var req usecase.CreateLeaseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BindError(c, err)
		return
	}

	lease, err := h.leaseUsecase.CreateLease(c.Request.Context(), req)
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"lease_id": lease.ID,
		"lease":    lease,
		"message":  "Lease created successfully",
	})
}

// UpdateLease changes the lease status, e.g. {"status": "terminated"}
// PUT /api/leases/:id
func (h *LeaseHandler) UpdateLease(c *gin.Context) {
	var req UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BindError(c, err)
		return
	}
	status := req.Status
	if status == "" {
		status = req.LeaseStatus
	}

	lease, err := h.leaseUsecase.SetLeaseStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lease": lease, "message": "Lease updated successfully"})
}
