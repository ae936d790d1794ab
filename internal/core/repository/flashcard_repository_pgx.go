package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
)

// PgxFlashcardRepository implements domain.FlashcardRepository using pgxpool.
type PgxFlashcardRepository struct {
	pool *pgxpool.Pool
}

// NewFlashcardRepository creates a new PgxFlashcardRepository.
func NewFlashcardRepository(pool *pgxpool.Pool) *PgxFlashcardRepository {
	return &PgxFlashcardRepository{pool: pool}
}

// Create inserts a new flashcard and returns the generated ID.
func (r *PgxFlashcardRepository) Create(ctx context.Context, card domain.FlashcardRow) (int, error) {
	query := `
		INSERT INTO flashcards (user_id, source_text, pinyin, translation, granularity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var cardID int
	err := r.pool.QueryRow(ctx, query,
		card.UserID, card.SourceText, card.Pinyin, card.Translation, card.Granularity,
	).Scan(&cardID)
	if err != nil {
		return 0, err
	}

	return cardID, nil
}

// ListByUser returns the user's flashcards, newest first.
func (r *PgxFlashcardRepository) ListByUser(ctx context.Context, userID int) ([]domain.FlashcardRow, error) {
	query := `
		SELECT id, user_id, source_text, pinyin, translation, granularity, created_at
		FROM flashcards
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.FlashcardRow
	for rows.Next() {
		var row domain.FlashcardRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.SourceText, &row.Pinyin,
			&row.Translation, &row.Granularity, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, row)
	}

	return cards, rows.Err()
}
