// Package v1 contains the HTTP handlers for API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	logicv1 "github.com/rwcunningham/MandarinLanguageInstructor/internal/logic/v1"
)

// Handler groups HTTP handlers for the reader API v1.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	auth       *logicv1.AuthService
	lookup     *logicv1.LookupService
	stories    *logicv1.StoryService
	flashcards *logicv1.FlashcardService
}

// NewHandler creates a new Handler with the given services.
func NewHandler(auth *logicv1.AuthService, lookup *logicv1.LookupService, stories *logicv1.StoryService, flashcards *logicv1.FlashcardService) *Handler {
	return &Handler{
		auth:       auth,
		lookup:     lookup,
		stories:    stories,
		flashcards: flashcards,
	}
}

// RegisterRoutes registers all API routes on the given router group.
// Everything except register/login sits behind RequireAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)

	authed := rg.Group("", h.RequireAuth())
	authed.GET("/levels", h.Levels)
	authed.GET("/stories", h.ListStories)
	authed.GET("/stories/:id", h.GetStory)
	authed.POST("/lookup", h.Lookup)
	authed.GET("/flashcards", h.ListFlashcards)
	authed.POST("/flashcards", h.CreateFlashcard)
}
