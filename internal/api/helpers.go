package api

import (
	"errors"
	"net/http"
	"strconv"

	"go-blog-platform/internal/service"
	"go-blog-platform/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getUserIDFromContext returns the authenticated user's ID, if any.
func getUserIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}

// viewerID is the authenticated user's ID, or 0 for anonymous requests.
func viewerID(c *gin.Context) uint {
	id, _ := getUserIDFromContext(c)
	return id
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the common service failures. Handlers with their own
// semantics (the silent redirect on post edits) intercept before calling
// this.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		if ve, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
			return
		}
		logger.L.Error("Unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// respondValidation re-renders a rejected submission: field errors plus the
// values the client sent, so nothing typed is lost.
func respondValidation(c *gin.Context, ve *service.ValidationError, submitted gin.H) {
	c.JSON(http.StatusBadRequest, gin.H{
		"errors":    ve.Fields,
		"submitted": submitted,
	})
}
