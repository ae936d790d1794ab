package v1

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
	"github.com/rwcunningham/MandarinLanguageInstructor/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StoryService serves reading material.
type StoryService struct {
	stories domain.StoryRepository
}

// NewStoryService creates a new StoryService.
func NewStoryService(stories domain.StoryRepository) *StoryService {
	return &StoryService{stories: stories}
}

// Levels returns the distinct story levels in ascending order.
// The slice is never nil so it serializes as [] rather than null.
func (s *StoryService) Levels(ctx context.Context) ([]string, error) {
	ctx, span := middleware.StartSpan(ctx, "story.levels", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	levels, err := s.stories.Levels(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query levels: %w", err)
	}
	if levels == nil {
		levels = []string{}
	}
	return levels, nil
}

// List returns story summaries, optionally filtered by level.
func (s *StoryService) List(ctx context.Context, level string) ([]domain.StorySummary, error) {
	ctx, span := middleware.StartSpan(ctx, "story.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("story.level", level),
	))
	defer span.End()

	rows, err := s.stories.List(ctx, level)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query stories: %w", err)
	}

	summaries := make([]domain.StorySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.StorySummary{
			ID:    row.ID,
			Title: row.Title,
			Level: row.Level,
		})
	}
	return summaries, nil
}

// Get returns the full story with decoded segments.
func (s *StoryService) Get(ctx context.Context, id int) (*domain.Story, error) {
	ctx, span := middleware.StartSpan(ctx, "story.get", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("story.id", id),
	))
	defer span.End()

	row, err := s.stories.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query story %d: %w", id, err)
	}
	if row == nil {
		return nil, fmt.Errorf("story %d: %w", id, ErrStoryNotFound)
	}

	var segments []domain.Segment
	if err := json.Unmarshal([]byte(row.ContentJSON), &segments); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("decode story %d segments: %w", id, err)
	}

	return &domain.Story{
		ID:       row.ID,
		Title:    row.Title,
		Level:    row.Level,
		Segments: segments,
	}, nil
}

// SeedIfEmpty inserts the sample stories when the store holds none.
// Safe to call on every startup.
func (s *StoryService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.stories.Count(ctx)
	if err != nil {
		return fmt.Errorf("count stories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seedStories {
		content, err := json.Marshal(seed.Segments)
		if err != nil {
			return fmt.Errorf("encode seed story %q: %w", seed.Title, err)
		}
		if _, err := s.stories.Create(ctx, seed.Title, seed.Level, string(content)); err != nil {
			return fmt.Errorf("insert seed story %q: %w", seed.Title, err)
		}
	}
	return nil
}
