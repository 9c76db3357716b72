package delivery

import (
	"net/http"

	"rentdesk-backend/internal/property/usecase"
	"rentdesk-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	propertyUsecase usecase.PropertyUsecase
	log             *zap.Logger
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyUsecase usecase.PropertyUsecase, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{propertyUsecase: propertyUsecase, log: log}
}

// ListProperties returns all properties
// GET /api/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyUsecase.ListProperties(c.Request.Context())
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GetProperty returns a single property
// GET /api/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyUsecase.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// CreateProperty registers a new property
// POST /api/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req usecase.PropertyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BindError(c, err)
		return
	}

	property, err := h.propertyUsecase.CreateProperty(c.Request.Context(), req)
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"property_id": property.ID,
		"property":    property,
		"message":     "Property created successfully",
	})
}

// UpdateProperty replaces a property's details
// PUT /api/properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var req usecase.PropertyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BindError(c, err)
		return
	}

	property, err := h.propertyUsecase.UpdateProperty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property, "message": "Property updated successfully"})
}

// DeleteProperty removes a property
// DELETE /api/properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.propertyUsecase.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		httputil.WriteError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
