package v1

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
)

// In-memory repository fakes for exercising the logic layer without a
// database.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]domain.UserRow
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]domain.UserRow)}
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *memUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[username]
	return ok, nil
}

func (r *memUserRepo) Create(_ context.Context, username, passwordHash string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.users[username] = domain.UserRow{ID: r.nextID, Username: username, PasswordHash: passwordHash}
	return r.nextID, nil
}

type memStoryRepo struct {
	mu     sync.Mutex
	nextID int
	rows   []domain.StoryRow
}

func newMemStoryRepo() *memStoryRepo { return &memStoryRepo{} }

func (r *memStoryRepo) Levels(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var levels []string
	for _, row := range r.rows {
		if !seen[row.Level] {
			seen[row.Level] = true
			levels = append(levels, row.Level)
		}
	}
	sort.Strings(levels)
	return levels, nil
}

func (r *memStoryRepo) List(_ context.Context, level string) ([]domain.StoryRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.StoryRow
	for _, row := range r.rows {
		if level == "" || row.Level == level {
			out = append(out, domain.StoryRow{ID: row.ID, Title: row.Title, Level: row.Level})
		}
	}
	return out, nil
}

func (r *memStoryRepo) GetByID(_ context.Context, id int) (*domain.StoryRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			out := row
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memStoryRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows), nil
}

func (r *memStoryRepo) Create(_ context.Context, title, level, contentJSON string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.rows = append(r.rows, domain.StoryRow{ID: r.nextID, Title: title, Level: level, ContentJSON: contentJSON})
	return r.nextID, nil
}

type memFlashcardRepo struct {
	mu     sync.Mutex
	nextID int
	rows   []domain.FlashcardRow
}

func newMemFlashcardRepo() *memFlashcardRepo { return &memFlashcardRepo{} }

func (r *memFlashcardRepo) Create(_ context.Context, card domain.FlashcardRow) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	card.ID = r.nextID
	card.CreatedAt = time.Now()
	r.rows = append(r.rows, card)
	return card.ID, nil
}

func (r *memFlashcardRepo) ListByUser(_ context.Context, userID int) ([]domain.FlashcardRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.FlashcardRow
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

// translatorFunc adapts a function to domain.Translator.
type translatorFunc func(ctx context.Context, text string) (string, bool)

func (f translatorFunc) Translate(ctx context.Context, text string) (string, bool) {
	return f(ctx, text)
}
