// Package ui serves the console's HTML surface: login and registration,
// the public pages, and the three role-gated dashboard trees. Handlers
// fetch fresh records from the ERP backend on every view and hand them to
// the table engine; nothing is cached between page loads.
package ui

import (
	"github.com/rs/zerolog"

	"github.com/iamselvaperumal/alc-console/internal/core/ports"
)

// UI bundles the dependencies shared by every handler.
type UI struct {
	backend  ports.BackendAPI
	sessions ports.SessionService
	logger   zerolog.Logger

	cookieName   string
	cookieSecure bool
}

// Config holds the UI settings.
type Config struct {
	// CookieName is the fixed key the bearer credential is stored under in
	// the browser.
	CookieName string
	// CookieSecure marks the credential cookie HTTPS-only.
	CookieSecure bool
}

// New wires a UI over the backend client and session service.
func New(backend ports.BackendAPI, sessions ports.SessionService, cfg Config, logger zerolog.Logger) *UI {
	name := cfg.CookieName
	if name == "" {
		name = "alc_token"
	}
	return &UI{
		backend:      backend,
		sessions:     sessions,
		logger:       logger.With().Str("component", "ui").Logger(),
		cookieName:   name,
		cookieSecure: cfg.CookieSecure,
	}
}
