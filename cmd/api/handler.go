package api

import (
	"context"
	"errors"
	"net/http"

	dashboardDelivery "rentdesk-backend/internal/dashboard/delivery"
	dashboardUsecase "rentdesk-backend/internal/dashboard/usecase"
	documentDelivery "rentdesk-backend/internal/document/delivery"
	documentUsecase "rentdesk-backend/internal/document/usecase"
	leaseDelivery "rentdesk-backend/internal/lease/delivery"
	leaseUsecase "rentdesk-backend/internal/lease/usecase"
	paymentDelivery "rentdesk-backend/internal/payment/delivery"
	paymentUsecase "rentdesk-backend/internal/payment/usecase"
	propertyDelivery "rentdesk-backend/internal/property/delivery"
	propertyUsecase "rentdesk-backend/internal/property/usecase"
	reminderDelivery "rentdesk-backend/internal/reminder/delivery"
	reminderUsecase "rentdesk-backend/internal/reminder/usecase"
	tenantDelivery "rentdesk-backend/internal/tenant/delivery"
	tenantUsecase "rentdesk-backend/internal/tenant/usecase"
	"rentdesk-backend/pkg/auth"
	"rentdesk-backend/pkg/config"
	"rentdesk-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Usecases bundles the business services exposed over HTTP
type Usecases struct {
	Tenant    tenantUsecase.TenantUsecase
	Property  propertyUsecase.PropertyUsecase
	Lease     leaseUsecase.LeaseUsecase
	Payment   paymentUsecase.PaymentUsecase
	Reminder  reminderUsecase.ReminderUsecase
	Dashboard dashboardUsecase.DashboardUsecase
	Document  documentUsecase.DocumentUsecase
}

type Handler struct {
	config           *config.Config
	log              *zap.Logger
	tokens           *auth.TokenManager
	tenantHandler    *tenantDelivery.TenantHandler
	propertyHandler  *propertyDelivery.PropertyHandler
	leaseHandler     *leaseDelivery.LeaseHandler
	paymentHandler   *paymentDelivery.PaymentHandler
	reminderHandler  *reminderDelivery.ReminderHandler
	dashboardHandler *dashboardDelivery.DashboardHandler
	documentHandler  *documentDelivery.DocumentHandler
}

func NewHandler(cfg *config.Config, log *zap.Logger, uc Usecases) *Handler {
	h := &Handler{
		config:           cfg,
		log:              log,
		tenantHandler:    tenantDelivery.NewTenantHandler(uc.Tenant, log),
		propertyHandler:  propertyDelivery.NewPropertyHandler(uc.Property, log),
		leaseHandler:     leaseDelivery.NewLeaseHandler(uc.Lease, log),
		paymentHandler:   paymentDelivery.NewPaymentHandler(uc.Payment, log),
		reminderHandler:  reminderDelivery.NewReminderHandler(uc.Reminder, log),
		dashboardHandler: dashboardDelivery.NewDashboardHandler(uc.Dashboard, log),
		documentHandler:  documentDelivery.NewDocumentHandler(uc.Document, log),
	}
	if cfg.AuthEnabled() {
		h.tokens = auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
		log.Info("Bearer token auth enabled for /api routes")
	}
	return h
}

// Engine builds the gin engine with middleware and routes
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httputil.RequestLogger(h.log))
	r.Use(httputil.CORS())

	SetupRoutes(r, h)
	return r
}

// Start serves HTTP on the configured port until ctx is cancelled, then
// drains in-flight requests within the shutdown timeout
func (h *Handler) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + h.config.Port,
		Handler: h.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		h.log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
