package domain

import "time"

// Session is the server-side record behind a bearer token. Sessions live
// only in process memory; a restart invalidates every outstanding token.
type Session struct {
	UserID    int
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenStore maps opaque bearer tokens to sessions. Implementations must be
// safe for concurrent use; each call touches a single key and no cross-key
// guarantee is required.
type TokenStore interface {
	// Put stores the session under token, unconditionally overwriting any
	// prior mapping for the same token.
	Put(token string, session Session)

	// Get returns the session for token. It applies no expiry policy —
	// callers decide whether the session is still valid. The second return
	// value reports whether the token was present.
	Get(token string) (Session, bool)

	// DeleteExpired removes every session whose expiry is at or before now
	// and returns the number removed. Expiry is otherwise lazy: an expired
	// entry that was never swept is still rejected at validation time.
	DeleteExpired(now time.Time) int
}
