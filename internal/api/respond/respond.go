package respond

import (
	"net/http"

	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Error writes err as {"error": ..., "details": ...}. Unknown errors become 500.
func Error(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		logger.Log.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
		return
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Log.WithError(err).WithField("path", c.FullPath()).Error(appErr.Message)
	}

	body := gin.H{"error": appErr.Message}
	if d := appErr.Details(); d != "" {
		body["details"] = d
	}
	c.JSON(appErr.HTTPStatus, body)
}

// Validation writes a 400 with a user-facing message.
func Validation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
