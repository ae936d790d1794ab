package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/logging"
	logicv1 "github.com/rwcunningham/MandarinLanguageInstructor/internal/logic/v1"
	"github.com/rwcunningham/MandarinLanguageInstructor/middleware"
)

// Levels handles GET /api/levels.
func (h *Handler) Levels(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	levels, err := h.stories.Levels(ctx)
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx).Error().Err(err).Msg("Levels query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"levels": levels})
}

// ListStories handles GET /api/stories with an optional ?level= filter.
func (h *Handler) ListStories(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	stories, err := h.stories.List(ctx, c.Query("level"))
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx).Error().Err(err).Msg("Story listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

// GetStory handles GET /api/stories/:id.
func (h *Handler) GetStory(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := logging.FromContext(ctx)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	story, err := h.stories.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Int("story_id", id).Msg("Story fetch failed")

		switch {
		case errors.Is(err, logicv1.ErrStoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, story)
}
