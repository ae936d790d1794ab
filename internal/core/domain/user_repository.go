package domain

import "context"

// UserRow represents a user record returned from the database.
// It includes the password hash so the Logic layer can verify credentials.
type UserRow struct {
	ID           int
	Username     string
	PasswordHash string
}

// UserRepository defines the data-access contract for user operations.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only — never on SQL or pgx directly.
type UserRepository interface {
	// GetByUsername returns the user matching the given username.
	// Returns (nil, nil) when no user is found.
	GetByUsername(ctx context.Context, username string) (*UserRow, error)

	// ExistsByUsername returns true when a user with the given
	// username already exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create inserts a new user and returns the generated user ID.
	Create(ctx context.Context, username, passwordHash string) (int, error)
}
