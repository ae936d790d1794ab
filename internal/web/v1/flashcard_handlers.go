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

// ListFlashcards handles GET /api/flashcards.
func (h *Handler) ListFlashcards(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	cards, err := h.flashcards.List(ctx, userID(c))
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx).Error().Err(err).Msg("Flashcard listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"flashcards": cards})
}

// CreateFlashcard handles POST /api/flashcards.
func (h *Handler) CreateFlashcard(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := logging.FromContext(ctx)

	var req domain.CreateFlashcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		logger.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cardID, err := h.flashcards.Create(ctx, userID(c), req)
	if err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Msg("Flashcard creation failed")

		switch {
		case errors.Is(err, logicv1.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "source_text, translation, granularity are required"})
		case errors.Is(err, logicv1.ErrBadGranularity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown granularity"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	logger.Info().Int("flashcard_id", cardID).Msg("Flashcard saved")
	c.JSON(http.StatusCreated, gin.H{"message": "Flashcard saved", "id": cardID})
}
