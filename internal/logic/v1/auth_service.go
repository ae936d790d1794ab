package v1

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
	"github.com/rwcunningham/MandarinLanguageInstructor/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the registration password policy.
const minPasswordLength = 6

// tokenBytes sizes the random part of a bearer token. 24 bytes gives
// 192 bits of entropy; collisions are treated as negligible and a mint
// simply overwrites any prior mapping for the same token string.
const tokenBytes = 24

// AuthService implements registration, login, and bearer-token validation.
// It depends on repository interfaces (injected via constructor) and
// MUST NOT access the database or SQL directly.
type AuthService struct {
	users      domain.UserRepository
	tokens     domain.TokenStore
	tokenTTL   time.Duration
	bcryptCost int

	// now is stubbed in tests to exercise expiry boundaries.
	now func() time.Time
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(users domain.UserRepository, tokens domain.TokenStore, tokenTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// Register creates a new user and mints a bearer token for it.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("username", req.Username),
	))
	defer span.End()

	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) < minPasswordLength {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return nil, fmt.Errorf("register user %q: %w", username, ErrWeakCredentials)
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return nil, fmt.Errorf("register user %q: %w", username, ErrUserExists)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.users.Create(ctx, username, string(passwordHash))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	token := s.mintToken(userID)

	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Bool("registration.success", true),
	)
	span.AddEvent("user.registered")

	return &domain.AuthResponse{Token: token, Username: username}, nil
}

// Login verifies credentials and mints a bearer token. Unknown usernames and
// wrong passwords produce errors the handler maps to the same 401 body, so
// the caller cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("username", req.Username),
	))
	defer span.End()

	username := strings.TrimSpace(req.Username)

	row, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", username, err)
	}
	if row == nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate user %q: %w", username, ErrUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(req.Password)); err != nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate user %q: %w", username, ErrInvalidCredentials)
	}

	token := s.mintToken(row.ID)

	span.SetAttributes(
		attribute.Int("user.id", row.ID),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")

	return &domain.AuthResponse{Token: token, Username: row.Username}, nil
}

// ValidateToken resolves a bearer token to the owning user ID. Expiry is
// applied lazily at read time; the entry is not deleted here.
func (s *AuthService) ValidateToken(token string) (int, error) {
	session, ok := s.tokens.Get(token)
	if !ok {
		return 0, fmt.Errorf("lookup session: %w", ErrSessionNotFound)
	}
	if !s.now().Before(session.ExpiresAt) {
		return 0, fmt.Errorf("session expired at %v: %w", session.ExpiresAt, ErrSessionExpired)
	}
	return session.UserID, nil
}

// SweepExpired removes expired sessions from the store and returns the
// number removed. Intended for a periodic housekeeping task.
func (s *AuthService) SweepExpired() int {
	return s.tokens.DeleteExpired(s.now())
}

// mintToken generates an opaque random token and records its session.
func (s *AuthService) mintToken(userID int) string {
	b := make([]byte, tokenBytes)
	rand.Read(b)
	token := hex.EncodeToString(b)

	issuedAt := s.now()
	s.tokens.Put(token, domain.Session{
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.tokenTTL),
	})
	return token
}
