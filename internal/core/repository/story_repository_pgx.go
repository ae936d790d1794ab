package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
)

// PgxStoryRepository implements domain.StoryRepository using pgxpool.
type PgxStoryRepository struct {
	pool *pgxpool.Pool
}

// NewStoryRepository creates a new PgxStoryRepository.
func NewStoryRepository(pool *pgxpool.Pool) *PgxStoryRepository {
	return &PgxStoryRepository{pool: pool}
}

// Levels returns the distinct story levels in ascending order.
func (r *PgxStoryRepository) Levels(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT level FROM stories ORDER BY level`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []string
	for rows.Next() {
		var level string
		if err := rows.Scan(&level); err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	return levels, rows.Err()
}

// List returns story summaries ordered by ID, optionally filtered by level.
// ContentJSON is not loaded for listings.
func (r *PgxStoryRepository) List(ctx context.Context, level string) ([]domain.StoryRow, error) {
	query := `SELECT id, title, level FROM stories ORDER BY id`
	args := []any{}
	if level != "" {
		query = `SELECT id, title, level FROM stories WHERE level = $1 ORDER BY id`
		args = append(args, level)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stories []domain.StoryRow
	for rows.Next() {
		var row domain.StoryRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Level); err != nil {
			return nil, err
		}
		stories = append(stories, row)
	}

	return stories, rows.Err()
}

// GetByID returns the story with the given ID.
// Returns (nil, nil) when no story is found.
func (r *PgxStoryRepository) GetByID(ctx context.Context, id int) (*domain.StoryRow, error) {
	query := `SELECT id, title, level, content_json FROM stories WHERE id = $1`

	var row domain.StoryRow
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Title, &row.Level, &row.ContentJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// Count returns the total number of stories.
func (r *PgxStoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stories`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new story and returns the generated story ID.
func (r *PgxStoryRepository) Create(ctx context.Context, title, level, contentJSON string) (int, error) {
	query := `INSERT INTO stories (title, level, content_json) VALUES ($1, $2, $3) RETURNING id`

	var storyID int
	err := r.pool.QueryRow(ctx, query, title, level, contentJSON).Scan(&storyID)
	if err != nil {
		return 0, err
	}

	return storyID, nil
}
