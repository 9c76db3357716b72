package delivery

import (
	"fmt"
	"net/http"
	"time"

	"rentdesk-backend/internal/payment/domain"
	"rentdesk-backend/internal/payment/usecase"
	"rentdesk-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	log            *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase, log: log}
}

// ListPayments returns all payments
// GET /api/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentUsecase.ListPayments(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	if payments == nil {
		payments = []*domain.PaymentView{}
	}
	c.JSON(http.StatusOK, payments)
}

// ListTenantPayments returns the payments of one tenant
// GET /api/payments/tenant/:tenant_id
func (h *PaymentHandler) ListTenantPayments(c *gin.Context) {
	payments, err := h.paymentUsecase.ListTenantPayments(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	if payments == nil {
		payments = []*domain.PaymentView{}
	}
	c.JSON(http.StatusOK, payments)
}

// RecordPayment stores a new payment
// POST /api/payments
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req usecase.RecordPaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BindError(c, err)
		return
	}

	payment, err := h.paymentUsecase.RecordPayment(c.Request.Context(), req)
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment_id": payment.ID,
		"payment":    payment,
		"message":    "Payment recorded successfully",
	})
}

// ExportPayments downloads all payments as a spreadsheet
// GET /api/payments/export
func (h *PaymentHandler) ExportPayments(c *gin.Context) {
	data, err := h.paymentUsecase.ExportPayments(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	filename := fmt.Sprintf("payments-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
