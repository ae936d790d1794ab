package v1

import (
	"context"
	"fmt"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
	"github.com/rwcunningham/MandarinLanguageInstructor/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FlashcardService saves and lists a user's flashcards.
type FlashcardService struct {
	cards domain.FlashcardRepository
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(cards domain.FlashcardRepository) *FlashcardService {
	return &FlashcardService{cards: cards}
}

// Create validates and persists a flashcard for the user, returning its ID.
func (s *FlashcardService) Create(ctx context.Context, userID int, req domain.CreateFlashcardRequest) (int, error) {
	ctx, span := middleware.StartSpan(ctx, "flashcard.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("user.id", userID),
	))
	defer span.End()

	if req.SourceText == "" || req.Translation == "" || req.Granularity == "" {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return 0, fmt.Errorf("create flashcard: %w", ErrMissingFields)
	}
	granularity, ok := domain.ParseGranularity(req.Granularity)
	if !ok {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return 0, fmt.Errorf("create flashcard with granularity %q: %w", req.Granularity, ErrBadGranularity)
	}

	cardID, err := s.cards.Create(ctx, domain.FlashcardRow{
		UserID:      userID,
		SourceText:  req.SourceText,
		Pinyin:      req.Pinyin,
		Translation: req.Translation,
		Granularity: string(granularity),
	})
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("insert flashcard: %w", err)
	}

	span.SetAttributes(attribute.Int("flashcard.id", cardID))
	return cardID, nil
}

// List returns the user's flashcards, newest first.
// The slice is never nil so it serializes as [] rather than null.
func (s *FlashcardService) List(ctx context.Context, userID int) ([]domain.Flashcard, error) {
	ctx, span := middleware.StartSpan(ctx, "flashcard.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("user.id", userID),
	))
	defer span.End()

	rows, err := s.cards.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query flashcards: %w", err)
	}

	cards := make([]domain.Flashcard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, domain.Flashcard{
			ID:          row.ID,
			SourceText:  row.SourceText,
			Pinyin:      row.Pinyin,
			Translation: row.Translation,
			Granularity: domain.Granularity(row.Granularity),
		})
	}
	return cards, nil
}
