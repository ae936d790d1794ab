package v1

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(newMemUserRepo(), repository.NewMemoryTokenStore(), 24*time.Hour, bcrypt.MinCost)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("token validates to the new user", func(t *testing.T) {
		svc := newTestAuthService()

		resp, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice", resp.Username)

		uid, err := svc.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, 1, uid)
	})

	t.Run("username is trimmed", func(t *testing.T) {
		svc := newTestAuthService()

		resp, err := svc.Register(ctx, domain.RegisterRequest{Username: "  bob  ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "bob", resp.Username)
	})

	t.Run("empty username rejected", func(t *testing.T) {
		svc := newTestAuthService()

		_, err := svc.Register(ctx, domain.RegisterRequest{Username: "   ", Password: "secret1"})
		require.ErrorIs(t, err, ErrWeakCredentials)
	})

	t.Run("short password rejected", func(t *testing.T) {
		svc := newTestAuthService()

		_, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "short"})
		require.ErrorIs(t, err, ErrWeakCredentials)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		svc := newTestAuthService()

		_, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "another1"})
		require.ErrorIs(t, err, ErrUserExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		svc := newTestAuthService()
		_, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)

		resp, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)

		uid, err := svc.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, 1, uid)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newTestAuthService()
		_, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)

		_, err = svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong-password"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		svc := newTestAuthService()

		_, err := svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "secret1"})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_TokenExpiry(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	resp, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(24*time.Hour - time.Second) }
		uid, err := svc.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, 1, uid)
	})

	t.Run("rejected exactly at expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(24 * time.Hour) }
		_, err := svc.ValidateToken(resp.Token)
		require.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("rejected after expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(24*time.Hour + time.Second) }
		_, err := svc.ValidateToken(resp.Token)
		require.ErrorIs(t, err, ErrSessionExpired)
	})
}

func TestAuthService_ValidateToken_Unknown(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ValidateToken("deadbeef")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_SweepExpired(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	resp, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(25 * time.Hour) }
	assert.Equal(t, 1, svc.SweepExpired())

	// Swept or not, the token no longer authenticates.
	_, err = svc.ValidateToken(resp.Token)
	require.Error(t, err)
}

func TestAuthService_TokensAreUnique(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		resp, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		require.Len(t, resp.Token, 48) // 24 random bytes, hex encoded
		require.False(t, seen[resp.Token])
		seen[resp.Token] = true
	}
}
