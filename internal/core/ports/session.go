package ports

import (
	"context"
	"time"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

// SessionService owns the authenticated-user state for a browser context.
type SessionService interface {
	// Resolve presents a stored credential to the backend's profile check.
	// A nil session with discard=true means the credential is dead and the
	// caller must erase it; Resolve itself never errors out to the caller
	// beyond that signal.
	Resolve(ctx context.Context, token string) (sess *domain.Session, discard bool)
	// Login exchanges credentials for a session. On failure the returned
	// message is ready for display and err carries the original cause.
	Login(ctx context.Context, in domain.LoginInput) (sess *domain.Session, message string, err error)
	Register(ctx context.Context, in domain.RegisterInput) (sess *domain.Session, message string, err error)
	// Logout retires the token server-side on a best-effort basis. Local
	// logout always succeeds, so there is nothing to return.
	Logout(ctx context.Context, token string)
}

// ProfileCache short-circuits repeat profile checks for a bounded TTL.
type ProfileCache interface {
	Get(ctx context.Context, token string) (*domain.Session, bool)
	Set(ctx context.Context, token string, sess *domain.Session, ttl time.Duration)
	Delete(ctx context.Context, token string)
}
