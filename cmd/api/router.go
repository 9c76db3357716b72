package api

import (
	"net/http"
	"os"
	"path/filepath"

	"rentdesk-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		protected := api.Group("")
		if h.tokens != nil {
			protected.Use(auth.Middleware(h.tokens))
		}

		tenants := protected.Group("/tenants")
		{
			tenants.GET("", h.tenantHandler.ListTenants)
			tenants.GET("/:id", h.tenantHandler.GetTenant)
			tenants.POST("", h.tenantHandler.CreateTenant)
			tenants.PUT("/:id", h.tenantHandler.UpdateTenant)
			tenants.DELETE("/:id", h.tenantHandler.DeleteTenant)
		}

		properties := protected.Group("/properties")
		{
			properties.GET("", h.propertyHandler.ListProperties)
			properties.GET("/:id", h.propertyHandler.GetProperty)
			properties.POST("", h.propertyHandler.CreateProperty)
			properties.PUT("/:id", h.propertyHandler.UpdateProperty)
			properties.DELETE("/:id", h.propertyHandler.DeleteProperty)
		}

		leases := protected.Group("/leases")
		{
			leases.GET("", h.leaseHandler.ListLeases)
			leases.GET("/:id", h.leaseHandler.GetLease)
			leases.POST("", h.leaseHandler.CreateLease)
			leases.PUT("/:id", h.leaseHandler.UpdateLease)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("", h.paymentHandler.ListPayments)
			payments.GET("/export", h.paymentHandler.ExportPayments)
			payments.GET("/tenant/:tenant_id", h.paymentHandler.ListTenantPayments)
			payments.POST("", h.paymentHandler.RecordPayment)
		}

		reminders := protected.Group("/reminders")
		{
			reminders.GET("", h.reminderHandler.ListReminders)
			reminders.GET("/upcoming", h.reminderHandler.ListUpcomingReminders)
			reminders.POST("/generate", h.reminderHandler.GenerateReminders)
			reminders.PUT("/:id/mark-sent", h.reminderHandler.MarkSent)
		}

		documents := protected.Group("/documents")
		{
			documents.GET("", h.documentHandler.ListDocuments)
			documents.GET("/tenant/:tenant_id", h.documentHandler.ListTenantDocuments)
			documents.POST("", h.documentHandler.UploadDocument)
			documents.GET("/:id/download", h.documentHandler.DownloadDocument)
			documents.DELETE("/:id", h.documentHandler.DeleteDocument)
		}

		protected.GET("/dashboard/stats", h.dashboardHandler.GetStats)
	}

	if dir := h.config.StaticDir; dir != "" {
		r.NoRoute(staticHandler(dir))
	}
}

// staticHandler serves files from dir and falls back to index.html so a
// single page client can own its routes
func staticHandler(dir string) gin.HandlerFunc {
	fs := http.Dir(dir)
	fileServer := http.FileServer(fs)
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if f, err := fs.Open(filepath.Clean(c.Request.URL.Path)); err == nil {
			_ = f.Close()
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
