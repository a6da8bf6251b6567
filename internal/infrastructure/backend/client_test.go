package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zerolog.Nop(), opts...), srv
}

func TestDo_SendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListEmployees(context.Background(), "tok-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatalf("request id header missing")
	}
}

func TestDo_NoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListAwards(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("authorization sent without a token: %q", gotAuth)
	}
}

func TestDo_Classification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   error
		msg    string
	}{
		{"404 is not found", 404, `{"message":"no such employee"}`, domain.ErrNotFound, "no such employee"},
		{"500 is server error", 500, `{"error":"boom"}`, domain.ErrServerError, "boom"},
		{"502 is server error", 502, ``, domain.ErrServerError, ""},
		{"400 is rejection", 400, `{"message":"Invalid credentials"}`, domain.ErrAuthRejected, "Invalid credentials"},
		{"403 is rejection", 403, `{"error":"forbidden"}`, domain.ErrAuthRejected, "forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.ListEmployees(context.Background(), "tok")
			if !errors.Is(err, tt.kind) {
				t.Fatalf("kind = %v, want %v", err, tt.kind)
			}
			if got := domain.StatusOf(err); got != tt.status {
				t.Fatalf("status = %d, want %d", got, tt.status)
			}
			if got := domain.MessageOf(err); got != tt.msg {
				t.Fatalf("message = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestDo_TransportFailureIsNetworkUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	client := New(srv.URL, time.Second, zerolog.Nop())

	_, err := client.ListEmployees(context.Background(), "tok")
	if !errors.Is(err, domain.ErrNetworkUnreachable) {
		t.Fatalf("expected network unreachable, got %v", err)
	}
	if domain.StatusOf(err) != 0 {
		t.Fatalf("transport failure must carry no HTTP status")
	}
}

func TestDo_MalformedSuccessBodyIsServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))

	_, err := client.ListEmployees(context.Background(), "tok")
	if !errors.Is(err, domain.ErrServerError) {
		t.Fatalf("malformed body should classify as server error, got %v", err)
	}
}

func TestDo_UnauthorizedHookFiresForDataCalls(t *testing.T) {
	var hookPath, hookToken string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), WithUnauthorizedHook(func(_ context.Context, path, token string) {
		hookPath, hookToken = path, token
	}))

	_, _ = client.ListEmployees(context.Background(), "stale")
	if hookPath != "/employees" || hookToken != "stale" {
		t.Fatalf("hook not fired for data call: path=%q token=%q", hookPath, hookToken)
	}
}

func TestDo_UnauthorizedHookExemptsAuthPaths(t *testing.T) {
	fired := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}), WithUnauthorizedHook(func(_ context.Context, _, _ string) {
		fired = true
	}))

	ctx := context.Background()
	_, _ = client.Login(ctx, domain.LoginInput{Email: "a@b.c", Password: "x"})
	_, _ = client.Register(ctx, domain.RegisterInput{})
	_, _ = client.Profile(ctx, "dead")
	if fired {
		t.Fatalf("hook must not fire for auth endpoints")
	}
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Even a 401 proves the ERP answered.
		w.WriteHeader(http.StatusUnauthorized)
	}))
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("reachable backend reported unhealthy: %v", err)
	}

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	down := New(srv.URL, time.Second, zerolog.Nop())
	if err := down.Ping(context.Background()); err == nil {
		t.Fatalf("unreachable backend reported healthy")
	}
}

func TestProfile_CarriesTokenIntoSession(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_id":"u1","username":"amy","email":"amy@alc.example","role":"Admin"}`))
	}))

	sess, err := client.Profile(context.Background(), "tok-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token != "tok-9" {
		t.Fatalf("token not reattached to session: %q", sess.Token)
	}
	if sess.Role != domain.RoleAdmin || sess.UserID != "u1" {
		t.Fatalf("profile fields wrong: %+v", sess)
	}
}
