package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
	"github.com/rwcunningham/MandarinLanguageInstructor/internal/logging"
	logicv1 "github.com/rwcunningham/MandarinLanguageInstructor/internal/logic/v1"
	"github.com/rwcunningham/MandarinLanguageInstructor/middleware"
)

// Lookup handles POST /api/lookup. Once the text passes validation the
// endpoint always answers 200; a failing translation provider shows up as
// the sentinel translation, never as an HTTP error.
func (h *Handler) Lookup(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := logging.FromContext(ctx)

	var req domain.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		logger.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.lookup.Resolve(ctx, req)
	if err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Msg("Lookup failed")

		switch {
		case errors.Is(err, logicv1.ErrEmptyText):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
