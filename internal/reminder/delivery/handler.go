package delivery

import (
	"net/http"
	"strconv"

	"rentdesk-backend/internal/reminder/domain"
	"rentdesk-backend/internal/reminder/usecase"
	"rentdesk-backend/pkg/apperror"
	"rentdesk-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler handles reminder-related HTTP requests
type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	log             *zap.Logger
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, log *zap.Logger) *ReminderHandler {
	return &ReminderHandler{reminderUsecase: reminderUsecase, log: log}
}

// GenerateReminders creates missing rent-due and lease-expiry reminders
// POST /api/reminders/generate
func (h *ReminderHandler) GenerateReminders(c *gin.Context) {
	result, err := h.reminderUsecase.GenerateReminders(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Reminders generated successfully",
		"rent_due":     result.RentDue,
		"lease_expiry": result.LeaseExpiry,
		"created":      result.Total(),
	})
}

// ListReminders returns all pending reminders
// GET /api/reminders
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	reminders, err := h.reminderUsecase.ListPending(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	if reminders == nil {
		reminders = []*domain.ReminderView{}
	}
	c.JSON(http.StatusOK, reminders)
}

// ListUpcomingReminders returns pending reminders due within ?days (default 30)
// GET /api/reminders/upcoming
func (h *ReminderHandler) ListUpcomingReminders(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httputil.WriteError(c, h.log, apperror.Validation("days must be a positive integer"))
			return
		}
		days = parsed
	}

	reminders, err := h.reminderUsecase.ListUpcoming(c.Request.Context(), days)
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	if reminders == nil {
		reminders = []*domain.ReminderView{}
	}
	c.JSON(http.StatusOK, reminders)
}

// MarkSent flags a reminder as sent
// PUT /api/reminders/:id/mark-sent
func (h *ReminderHandler) MarkSent(c *gin.Context) {
	if err := h.reminderUsecase.MarkSent(c.Request.Context(), c.Param("id")); err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder marked as sent"})
}
