// Package v1 provides the business logic for API version 1: authentication,
// text lookup resolution, stories, and flashcards.
//
// Error Handling:
// This package defines sentinel errors that represent common failures.
// These errors should be wrapped with context using fmt.Errorf("%w") when
// returned from business logic methods.
//
// Error Checking (in handlers):
//
//	switch {
//	case errors.Is(err, logicv1.ErrInvalidCredentials):
//	    c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
//	case errors.Is(err, logicv1.ErrUserNotFound):
//	    c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
//	default:
//	    c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
//	}
package v1

import "errors"

// Sentinel errors for the v1 API.
// These errors should be wrapped with context using fmt.Errorf("%w") when returned.
var (
	// ErrInvalidCredentials indicates the provided credentials are incorrect.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates the user does not exist in the system.
	// HTTP Status: 401 Unauthorized (don't reveal user existence)
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates the username already exists in the system.
	// HTTP Status: 409 Conflict
	ErrUserExists = errors.New("user already exists")

	// ErrWeakCredentials indicates the username is empty or the password is
	// shorter than the minimum length.
	// HTTP Status: 400 Bad Request
	ErrWeakCredentials = errors.New("username and password of at least 6 characters required")

	// ErrSessionNotFound indicates the bearer token does not exist.
	// HTTP Status: 401 Unauthorized
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired indicates the bearer token has expired.
	// HTTP Status: 401 Unauthorized
	ErrSessionExpired = errors.New("session expired")

	// ErrEmptyText indicates a lookup was requested for empty or
	// whitespace-only text.
	// HTTP Status: 400 Bad Request
	ErrEmptyText = errors.New("text required")

	// ErrMissingFields indicates a flashcard is missing a required field.
	// HTTP Status: 400 Bad Request
	ErrMissingFields = errors.New("source_text, translation, granularity are required")

	// ErrBadGranularity indicates a granularity outside the closed vocabulary.
	// HTTP Status: 400 Bad Request
	ErrBadGranularity = errors.New("unknown granularity")

	// ErrStoryNotFound indicates the requested story does not exist.
	// HTTP Status: 404 Not Found
	ErrStoryNotFound = errors.New("story not found")
)
