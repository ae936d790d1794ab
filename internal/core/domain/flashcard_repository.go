package domain

import (
	"context"
	"time"
)

// FlashcardRow represents a flashcard record returned from the database.
type FlashcardRow struct {
	ID          int
	UserID      int
	SourceText  string
	Pinyin      string
	Translation string
	Granularity string
	CreatedAt   time.Time
}

// FlashcardRepository defines the data-access contract for flashcards.
// All reads are scoped to the owning user.
type FlashcardRepository interface {
	// Create inserts a new flashcard and returns the generated ID.
	Create(ctx context.Context, card FlashcardRow) (int, error)

	// ListByUser returns the user's flashcards, newest first.
	ListByUser(ctx context.Context, userID int) ([]FlashcardRow, error)
}
