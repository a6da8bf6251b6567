package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

func testJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}

type stubAuthAPI struct {
	loginFn    func(ctx context.Context, in domain.LoginInput) (*domain.Session, error)
	registerFn func(ctx context.Context, in domain.RegisterInput) (*domain.Session, error)
	logoutFn   func(ctx context.Context, token string) error
	profileFn  func(ctx context.Context, token string) (*domain.Session, error)
}

func (s *stubAuthAPI) Login(ctx context.Context, in domain.LoginInput) (*domain.Session, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthAPI) Register(ctx context.Context, in domain.RegisterInput) (*domain.Session, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthAPI) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthAPI) Profile(ctx context.Context, token string) (*domain.Session, error) {
	return s.profileFn(ctx, token)
}

type stubCache struct {
	entries map[string]*domain.Session
	deleted []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.Session)}
}

func (c *stubCache) Get(_ context.Context, token string) (*domain.Session, bool) {
	s, ok := c.entries[token]
	return s, ok
}

func (c *stubCache) Set(_ context.Context, token string, sess *domain.Session, _ time.Duration) {
	c.entries[token] = sess
}

func (c *stubCache) Delete(_ context.Context, token string) {
	c.deleted = append(c.deleted, token)
	delete(c.entries, token)
}

func newService(backend *stubAuthAPI, cache *stubCache) *SessionService {
	return NewSessionService(backend, cache, time.Minute, zerolog.Nop())
}

func TestResolve_EmptyTokenIsNotDiscarded(t *testing.T) {
	svc := newService(&stubAuthAPI{}, newStubCache())
	sess, discard := svc.Resolve(context.Background(), "")
	if sess != nil || discard {
		t.Fatalf("empty token should be a quiet no-session, got sess=%v discard=%v", sess, discard)
	}
}

func TestResolve_ProfileSuccessCachesSession(t *testing.T) {
	cache := newStubCache()
	backend := &stubAuthAPI{
		profileFn: func(_ context.Context, token string) (*domain.Session, error) {
			return &domain.Session{Username: "amy", Role: domain.RoleAdmin, Token: token}, nil
		},
	}
	svc := newService(backend, cache)

	sess, discard := svc.Resolve(context.Background(), "tok-1")
	if discard {
		t.Fatalf("live credential discarded")
	}
	if sess == nil || sess.Username != "amy" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if _, ok := cache.entries["tok-1"]; !ok {
		t.Fatalf("resolved session not cached")
	}
}

func TestResolve_CacheHitSkipsBackend(t *testing.T) {
	cache := newStubCache()
	cache.entries["tok-1"] = &domain.Session{Username: "amy", Token: "tok-1"}
	backend := &stubAuthAPI{
		profileFn: func(_ context.Context, _ string) (*domain.Session, error) {
			t.Fatalf("backend must not be consulted on cache hit")
			return nil, nil
		},
	}
	svc := newService(backend, cache)

	sess, discard := svc.Resolve(context.Background(), "tok-1")
	if sess == nil || discard {
		t.Fatalf("cache hit mishandled: sess=%v discard=%v", sess, discard)
	}
}

func TestResolve_AnyFailureDiscardsCredential(t *testing.T) {
	cache := newStubCache()
	backend := &stubAuthAPI{
		profileFn: func(_ context.Context, _ string) (*domain.Session, error) {
			return nil, &domain.APIError{Status: 401, Kind: domain.ErrAuthRejected}
		},
	}
	svc := newService(backend, cache)

	sess, discard := svc.Resolve(context.Background(), "dead")
	if sess != nil || !discard {
		t.Fatalf("dead credential should be discarded, got sess=%v discard=%v", sess, discard)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != "dead" {
		t.Fatalf("cache entry not invalidated: %v", cache.deleted)
	}
}

func TestLogin_MessagePriority(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "backend message wins",
			err:  &domain.APIError{Status: 400, Message: "Invalid credentials", Kind: domain.ErrAuthRejected},
			want: "Invalid credentials",
		},
		{
			name: "network failure names the network",
			err:  &domain.APIError{Kind: domain.ErrNetworkUnreachable},
			want: "Network error: Cannot reach server. Check your internet connection.",
		},
		{
			name: "bare backend failure falls back to generic",
			err:  &domain.APIError{Status: 400, Kind: domain.ErrAuthRejected},
			want: "Login failed. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &stubAuthAPI{
				loginFn: func(_ context.Context, _ domain.LoginInput) (*domain.Session, error) {
					return nil, tt.err
				},
			}
			svc := newService(backend, newStubCache())
			_, msg, err := svc.Login(context.Background(), domain.LoginInput{Email: "a@b.c", Password: "x"})
			if err == nil {
				t.Fatalf("expected error")
			}
			if msg != tt.want {
				t.Fatalf("message = %q, want %q", msg, tt.want)
			}
		})
	}
}

func TestLogin_SuccessPrimesCache(t *testing.T) {
	cache := newStubCache()
	backend := &stubAuthAPI{
		loginFn: func(_ context.Context, in domain.LoginInput) (*domain.Session, error) {
			return &domain.Session{Username: "amy", Role: domain.RoleAdmin, Token: "fresh"}, nil
		},
	}
	svc := newService(backend, cache)

	sess, msg, err := svc.Login(context.Background(), domain.LoginInput{Email: "a@b.c", Password: "x"})
	if err != nil || msg != "" {
		t.Fatalf("unexpected failure: %v %q", err, msg)
	}
	if sess.Token != "fresh" {
		t.Fatalf("token not carried through: %q", sess.Token)
	}
	if _, ok := cache.entries["fresh"]; !ok {
		t.Fatalf("login did not prime the profile cache")
	}
}

func TestRegister_FailureMessage(t *testing.T) {
	backend := &stubAuthAPI{
		registerFn: func(_ context.Context, _ domain.RegisterInput) (*domain.Session, error) {
			return nil, &domain.APIError{Status: 500, Kind: domain.ErrServerError}
		},
	}
	svc := newService(backend, newStubCache())
	_, msg, err := svc.Register(context.Background(), domain.RegisterInput{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if msg != "Registration failed. Please try again." {
		t.Fatalf("message = %q", msg)
	}
}

func TestLogout_BackendFailureStillClearsCache(t *testing.T) {
	cache := newStubCache()
	cache.entries["tok"] = &domain.Session{Username: "amy"}
	backend := &stubAuthAPI{
		logoutFn: func(_ context.Context, _ string) error {
			return &domain.APIError{Kind: domain.ErrNetworkUnreachable}
		},
	}
	svc := newService(backend, cache)

	svc.Logout(context.Background(), "tok")
	if _, ok := cache.entries["tok"]; ok {
		t.Fatalf("cache entry survived logout")
	}
}

func TestTTLFor_CappedByTokenExpiry(t *testing.T) {
	svc := NewSessionService(&stubAuthAPI{}, newStubCache(), time.Hour, zerolog.Nop())

	// Unsigned HS256 token with exp 30 seconds out; the signature is never
	// verified by ttlFor.
	tok := testJWT(t, time.Now().Add(30*time.Second))
	ttl := svc.ttlFor(tok)
	if ttl > 31*time.Second {
		t.Fatalf("ttl not capped by token expiry: %v", ttl)
	}
	if ttl <= 0 {
		t.Fatalf("ttl should remain positive for a live token: %v", ttl)
	}

	if got := svc.ttlFor("opaque-token"); got != time.Hour {
		t.Fatalf("opaque token should keep configured ttl, got %v", got)
	}
}
