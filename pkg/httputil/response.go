package httputil

import (
	"net/http"

	"rentdesk-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WriteError maps err to a status code and writes {"error": message}.
// Server side failures are logged; client errors are not.
func WriteError(c *gin.Context, log *zap.Logger, err error) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": apperror.Message(err)})
}

// BindError reports a request body that could not be decoded or validated.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
