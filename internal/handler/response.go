package handler

import (
	"net/http"
	"time"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// writeError maps a classified error onto its status code. Unclassified and
// persistence failures are logged and reported as 500 without detail.
func writeError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		jsonError(c, http.StatusBadRequest, apperr.Message(err))
	case apperr.KindNotFound:
		jsonError(c, http.StatusNotFound, apperr.Message(err))
	case apperr.KindConflict:
		jsonError(c, http.StatusConflict, apperr.Message(err))
	default:
		logger.From(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
	}
}

// bindJSON decodes the body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}

// parseDate accepts RFC3339 or YYYY-MM-DD.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
