package delivery

import (
	"net/http"

	"rentdesk-backend/internal/dashboard/usecase"
	"rentdesk-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves dashboard statistics
type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	log              *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase, log: log}
}

// GetStats returns counts and revenue for the dashboard
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardUsecase.ComputeStats(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
