package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/Movie-Catalog/internal/api/response"
	"ctchen222/Movie-Catalog/internal/api/service"

	"github.com/gin-gonic/gin"
)

// handleServiceError is the single mapping from the service error taxonomy to
// HTTP responses. Unrecognized errors are logged and reported as a generic
// 500; their text never reaches the client.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrDuplicateEmail):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found")
	default:
		slog.ErrorContext(c.Request.Context(), "unexpected service error",
			"path", c.FullPath(),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
