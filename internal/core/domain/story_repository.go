package domain

import "context"

// StoryRow represents a story record returned from the database.
// ContentJSON holds the segment list as stored; the Logic layer decodes it.
type StoryRow struct {
	ID          int
	Title       string
	Level       string
	ContentJSON string
}

// StoryRepository defines the data-access contract for reading material.
type StoryRepository interface {
	// Levels returns the distinct story levels in ascending order.
	Levels(ctx context.Context) ([]string, error)

	// List returns story summaries ordered by ID. An empty level matches
	// all stories; otherwise only stories of that level are returned.
	List(ctx context.Context, level string) ([]StoryRow, error)

	// GetByID returns the story with the given ID.
	// Returns (nil, nil) when no story is found.
	GetByID(ctx context.Context, id int) (*StoryRow, error)

	// Count returns the total number of stories.
	Count(ctx context.Context) (int, error)

	// Create inserts a new story and returns the generated story ID.
	Create(ctx context.Context, title, level, contentJSON string) (int, error)
}
