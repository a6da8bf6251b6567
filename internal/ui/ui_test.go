package ui

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
	"github.com/iamselvaperumal/alc-console/internal/core/service"
	"github.com/iamselvaperumal/alc-console/internal/infrastructure/backend"
	"github.com/iamselvaperumal/alc-console/internal/infrastructure/cache"
)

// fakeERP is a minimal stand-in for the real backend: bcrypt-checked login,
// JWT-verified profile and record endpoints, and a revocation switch to
// simulate a credential dying mid-session.
type fakeERP struct {
	t      *testing.T
	secret []byte

	mu          sync.Mutex
	revokeData  bool // data endpoints return 401
	users       map[string]fakeUser
	lastEnquiry domain.EnquiryInput
}

type fakeUser struct {
	id       string
	username string
	passHash []byte
	role     string
}

func newFakeERP(t *testing.T) *fakeERP {
	t.Helper()
	hash := func(pw string) []byte {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		require.NoError(t, err)
		return h
	}
	return &fakeERP{
		t:      t,
		secret: []byte("erp-test-secret"),
		users: map[string]fakeUser{
			"admin@alc.example":  {id: "u-admin", username: "root", passHash: hash("admin-pass"), role: "Admin"},
			"amy@alc.example":    {id: "u-amy", username: "amy", passHash: hash("amy-pass"), role: "Employee"},
			"client@alc.example": {id: "u-cli", username: "acme", passHash: hash("client-pass"), role: "Client"},
		},
	}
}

func (f *fakeERP) issueToken(u fakeUser) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.id,
		"role": u.role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString(f.secret)
	require.NoError(f.t, err)
	return signed
}

func (f *fakeERP) userFor(r *http.Request) (fakeUser, bool) {
	auth := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return fakeUser{}, false
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return f.secret, nil }); err != nil {
		return fakeUser{}, false
	}
	sub, _ := claims["sub"].(string)
	for _, u := range f.users {
		if u.id == sub {
			return u, true
		}
	}
	return fakeUser{}, false
}

func (f *fakeERP) profileJSON(u fakeUser, email string) map[string]any {
	return map[string]any{
		"_id":      u.id,
		"username": u.username,
		"email":    email,
		"role":     u.role,
	}
}

func (f *fakeERP) emailOf(u fakeUser) string {
	for email, cand := range f.users {
		if cand.id == u.id {
			return email
		}
	}
	return ""
}

func (f *fakeERP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/auth/login" && r.Method == http.MethodPost:
		var in domain.LoginInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		u, ok := f.users[in.Email]
		if !ok || bcrypt.CompareHashAndPassword(u.passHash, []byte(in.Password)) != nil {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		body := f.profileJSON(u, in.Email)
		body["token"] = f.issueToken(u)
		_ = json.NewEncoder(w).Encode(body)

	case r.URL.Path == "/auth/profile":
		u, ok := f.userFor(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(f.profileJSON(u, f.emailOf(u)))

	case r.URL.Path == "/auth/logout":
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})

	case r.URL.Path == "/enquiries" && r.Method == http.MethodPost:
		f.mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&f.lastEnquiry)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))

	default:
		// Record endpoints. All require a live credential.
		f.mu.Lock()
		revoked := f.revokeData
		f.mu.Unlock()
		if _, ok := f.userFor(r); !ok || revoked {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
			return
		}
		if r.URL.Path == "/employees" && r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[{"_id":"e1","user":{"_id":"u-amy","username":"amy","email":"amy@alc.example"},"designation":"Weaver","salary":42000}]`))
			return
		}
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}
}

// console wires the full stack over the fake ERP and returns a browser-like
// client with a cookie jar and no automatic redirects.
func console(t *testing.T, erp *fakeERP) (*httptest.Server, *http.Client) {
	t.Helper()
	erpSrv := httptest.NewServer(erp)
	t.Cleanup(erpSrv.Close)

	log := zerolog.Nop()
	profiles := cache.NewMemoryProfileCache()
	api := backend.New(erpSrv.URL, 5*time.Second, log,
		backend.WithUnauthorizedHook(func(ctx context.Context, path, token string) {
			profiles.Delete(ctx, token)
		}),
	)
	sessions := service.NewSessionService(api, profiles, time.Minute, log)
	front := New(api, sessions, Config{CookieName: "alc_token"}, log)
	e := NewRouter(front, NewHealthHandler(map[string]Pinger{"backend": api}))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client
}

func login(t *testing.T, client *http.Client, base, email, password string) *http.Response {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	resp, err := client.PostForm(base+"/login", form)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func get(t *testing.T, client *http.Client, rawURL string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestLoginRedirectsToRoleDashboard(t *testing.T) {
	srv, client := console(t, newFakeERP(t))

	resp := login(t, client, srv.URL, "admin@alc.example", "admin-pass")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	resp = login(t, client, srv.URL, "client@alc.example", "client-pass")
	assert.Equal(t, "/client", resp.Header.Get("Location"))
}

func TestLoginFailureShowsBackendMessage(t *testing.T) {
	srv, client := console(t, newFakeERP(t))

	form := url.Values{"email": {"admin@alc.example"}, "password": {"wrong"}}
	resp, err := client.PostForm(srv.URL+"/login", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, "Invalid credentials")
	// The form keeps the typed email.
	assert.Contains(t, body, "admin@alc.example")
}

func TestGuardRedirectsAnonymousWithReturnTo(t *testing.T) {
	srv, client := console(t, newFakeERP(t))

	resp, _ := get(t, client, srv.URL+"/admin/payroll")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc := resp.Header.Get("Location")
	assert.True(t, strings.HasPrefix(loc, "/login?returnTo="), "location = %s", loc)
	assert.Contains(t, loc, url.QueryEscape("/admin/payroll"))
}

func TestLoginHonoursReturnTo(t *testing.T) {
	srv, client := console(t, newFakeERP(t))

	form := url.Values{
		"email":    {"admin@alc.example"},
		"password": {"admin-pass"},
		"returnTo": {"/admin/payroll"},
	}
	resp, err := client.PostForm(srv.URL+"/login", form)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/admin/payroll", resp.Header.Get("Location"))
}

func TestLoginRejectsForeignReturnTo(t *testing.T) {
	srv, client := console(t, newFakeERP(t))

	form := url.Values{
		"email":    {"admin@alc.example"},
		"password": {"admin-pass"},
		"returnTo": {"https://evil.example/phish"},
	}
	resp, err := client.PostForm(srv.URL+"/login", form)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestWrongRoleIsForbiddenNotRedirected(t *testing.T) {
	srv, client := console(t, newFakeERP(t))
	login(t, client, srv.URL, "client@alc.example", "client-pass")

	resp, body := get(t, client, srv.URL+"/admin")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "Access denied")

	// The client's own tree still renders.
	resp, body = get(t, client, srv.URL+"/client")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Client Dashboard")

	// Same shape from the other side: an admin is forbidden on the
	// employee tree but rendered on their own.
	admin := newFakeERP(t)
	srv2, client2 := console(t, admin)
	login(t, client2, srv2.URL, "admin@alc.example", "admin-pass")

	resp, _ = get(t, client2, srv2.URL+"/employee")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, body = get(t, client2, srv2.URL+"/admin")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Admin Dashboard")
}

func TestRoleMatchDespiteDifferentCase(t *testing.T) {
	erp := newFakeERP(t)
	u := erp.users["admin@alc.example"]
	u.role = "ADMIN"
	erp.users["admin@alc.example"] = u
	srv, client := console(t, erp)

	login(t, client, srv.URL, "admin@alc.example", "admin-pass")
	resp, _ := get(t, client, srv.URL+"/admin")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminListRendersFetchedRecords(t *testing.T) {
	srv, client := console(t, newFakeERP(t))
	login(t, client, srv.URL, "admin@alc.example", "admin-pass")

	resp, body := get(t, client, srv.URL+"/admin/employees")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "amy")
	assert.Contains(t, body, "Weaver")
	assert.Contains(t, body, "Showing 1–1 of 1")
}

func TestRevokedCredentialForcesFreshLogin(t *testing.T) {
	erp := newFakeERP(t)
	srv, client := console(t, erp)
	login(t, client, srv.URL, "admin@alc.example", "admin-pass")

	erp.mu.Lock()
	erp.revokeData = true
	erp.mu.Unlock()

	// Data call 401s: the credential cookie is erased and the browser is
	// sent to the login view.
	resp, _ := get(t, client, srv.URL+"/admin/employees")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	base, err := url.Parse(srv.URL)
	require.NoError(t, err)
	for _, ck := range client.Jar.Cookies(base) {
		assert.NotEqual(t, "alc_token", ck.Name, "credential cookie survived the 401 reset")
	}
}

func TestLogoutClearsCredential(t *testing.T) {
	srv, client := console(t, newFakeERP(t))
	login(t, client, srv.URL, "admin@alc.example", "admin-pass")

	resp, _ := get(t, client, srv.URL+"/logout")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// Back to anonymous: the admin tree redirects again.
	resp, _ = get(t, client, srv.URL+"/admin")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestEnquiryIdentityComesFromSession(t *testing.T) {
	erp := newFakeERP(t)
	srv, client := console(t, erp)
	login(t, client, srv.URL, "client@alc.example", "client-pass")

	form := url.Values{
		"subject": {"Fabric order"},
		"message": {"Need 400m of twill."},
		"name":    {"Spoofed Name"},
		"email":   {"spoof@evil.example"},
	}
	resp, err := client.PostForm(srv.URL+"/client/enquiry", form)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	erp.mu.Lock()
	sent := erp.lastEnquiry
	erp.mu.Unlock()
	assert.Equal(t, "acme", sent.Name)
	assert.Equal(t, "client@alc.example", sent.Email)
	assert.Equal(t, "Fabric order", sent.Subject)
}

func TestHealthProbes(t *testing.T) {
	srv, client := console(t, newFakeERP(t))

	resp, body := get(t, client, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)

	resp, body = get(t, client, srv.URL+"/health/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"backend"`)
}
