package http

import (
	"errors"
	"log/slog"
	"net/http"

	"commerce-api/internal/apperr"

	"github.com/gin-gonic/gin"
)

// writeError maps error kinds to status categories. Invariant and internal
// failures are logged with their detail but surfaced generically.
func writeError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		slog.Error("unhandled error", "error", err)
		writeInternal(c)
		return
	}

	var status int
	switch ae.Kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindBusinessRule:
		status = http.StatusBadRequest
	default:
		slog.Error("internal error", "code", ae.Code, "message", ae.Message, "detail", ae.Detail)
		writeInternal(c)
		return
	}

	slog.Warn("request rejected", "code", ae.Code, "detail", ae.Detail)
	c.JSON(status, ErrorResponse{Code: ae.Code, Message: ae.Message, Detail: ae.Detail})
}

func writeInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    apperr.CodeInternal,
		Message: "an internal error occurred",
	})
}

func writeBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "invalid request body",
		Detail:  err.Error(),
	})
}
