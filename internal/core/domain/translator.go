package domain

import "context"

// Translator resolves Chinese text to an English translation via an
// external provider. Implementations never return an error: any failure —
// timeout, transport error, bad status, malformed payload — is reported as
// ok == false so callers can degrade gracefully instead of propagating a
// dependency failure.
type Translator interface {
	Translate(ctx context.Context, text string) (translation string, ok bool)
}
