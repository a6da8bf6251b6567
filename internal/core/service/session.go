package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
	"github.com/iamselvaperumal/alc-console/internal/core/ports"
	"github.com/iamselvaperumal/alc-console/internal/metrics"
)

// User-facing fallback messages, in the priority order backend message →
// network message → generic.
const (
	msgLoginFailed    = "Login failed. Please try again."
	msgRegisterFailed = "Registration failed. Please try again."
	msgNetwork        = "Network error: Cannot reach server. Check your internet connection."
)

const defaultCacheTTL = 5 * time.Minute

// SessionService mediates every identity-affecting backend call. It is the
// only writer of session state; everything else reads the resolved session
// from the request context.
type SessionService struct {
	backend  ports.AuthAPI
	cache    ports.ProfileCache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewSessionService builds a SessionService. A non-positive cacheTTL falls
// back to a 5 minute default.
func NewSessionService(backend ports.AuthAPI, cache ports.ProfileCache, cacheTTL time.Duration, logger zerolog.Logger) *SessionService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &SessionService{
		backend:  backend,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "session").Logger(),
	}
}

// Resolve presents a stored credential to the profile check. Any failure at
// all — rejection, network, malformed response — yields no session and
// discard=true: an unresolvable credential is a dead credential. Consumers
// must not treat an unresolved state as "logged out" before Resolve returns.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, bool) {
	if token == "" {
		return nil, false
	}

	if sess, ok := s.cache.Get(ctx, token); ok {
		metrics.SessionResolutionsTotal.WithLabelValues("cache_hit").Inc()
		return sess, false
	}

	sess, err := s.backend.Profile(ctx, token)
	if err != nil {
		metrics.SessionResolutionsTotal.WithLabelValues("discarded").Inc()
		s.logger.Debug().Err(err).Msg("stored credential did not resolve")
		s.cache.Delete(ctx, token)
		return nil, true
	}

	metrics.SessionResolutionsTotal.WithLabelValues("resolved").Inc()
	s.cache.Set(ctx, token, sess, s.ttlFor(token))
	return sess, false
}

// Login exchanges credentials for a session. On failure the returned message
// is ready for form display and err carries the original classified cause.
func (s *SessionService) Login(ctx context.Context, in domain.LoginInput) (*domain.Session, string, error) {
	sess, err := s.backend.Login(ctx, in)
	if err != nil {
		msg := failureMessage(err, msgLoginFailed)
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return nil, msg, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.cache.Set(ctx, sess.Token, sess, s.ttlFor(sess.Token))
	return sess, "", nil
}

// Register creates an account; symmetric to Login.
func (s *SessionService) Register(ctx context.Context, in domain.RegisterInput) (*domain.Session, string, error) {
	sess, err := s.backend.Register(ctx, in)
	if err != nil {
		return nil, failureMessage(err, msgRegisterFailed), err
	}
	s.cache.Set(ctx, sess.Token, sess, s.ttlFor(sess.Token))
	return sess, "", nil
}

// Logout retires the credential. The backend notification is best-effort;
// the cache entry is dropped regardless, so local logout always succeeds.
func (s *SessionService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.backend.Logout(ctx, token); err != nil {
		s.logger.Warn().Err(err).Msg("backend logout failed")
	}
	s.cache.Delete(ctx, token)
}

// ttlFor caps the cache TTL at the credential's own expiry when the opaque
// token happens to be a JWT. The signature is never checked here — only the
// backend can vouch for the token; the claim is used purely as an upper
// bound on how long a profile may be served from cache.
func (s *SessionService) ttlFor(token string) time.Duration {
	ttl := s.cacheTTL
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ttl
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ttl
	}
	if remaining := time.Until(exp.Time); remaining < ttl {
		return remaining
	}
	return ttl
}

// failureMessage derives the display message for a failed auth call:
// backend-provided message, then the network message, then the generic
// fallback.
func failureMessage(err error, generic string) string {
	if msg := domain.MessageOf(err); msg != "" {
		return msg
	}
	if errors.Is(err, domain.ErrNetworkUnreachable) {
		return msgNetwork
	}
	return generic
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrNetworkUnreachable) {
		return "unreachable"
	}
	return "rejected"
}
