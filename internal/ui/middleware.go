package ui

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
	"github.com/iamselvaperumal/alc-console/internal/core/guard"
	"github.com/iamselvaperumal/alc-console/internal/metrics"
)

const sessionKey = "session"

// sessionFrom returns the session resolved for this request, or nil.
func sessionFrom(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionKey).(*domain.Session)
	return sess
}

// ResolveSession reads the stored credential and resolves it against the
// backend before any guarded handler runs, so no consumer ever observes an
// unresolved session. A credential the backend refuses to vouch for is
// erased on the spot.
func (ui *UI) ResolveSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ui.credential(c)
		if token == "" {
			return next(c)
		}
		sess, discard := ui.sessions.Resolve(c.Request().Context(), token)
		if discard {
			ui.clearCredential(c)
		}
		if sess != nil {
			c.Set(sessionKey, sess)
		}
		return next(c)
	}
}

// RequireRole guards a route tree. The verdict is recomputed on every
// request — session and location change independently, so nothing here may
// be cached.
func (ui *UI) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := guard.Evaluate(sessionFrom(c), false, role, c.Request().RequestURI)
			metrics.GuardDecisionsTotal.WithLabelValues(d.Outcome.String()).Inc()

			switch d.Outcome {
			case guard.Render:
				return next(c)
			case guard.RedirectToLogin:
				return c.Redirect(http.StatusSeeOther, loginURL(d.ReturnTo))
			case guard.Unauthorized:
				return ui.render(c, http.StatusForbidden, "unauthorized", map[string]any{
					"Title": "Unauthorized",
				})
			default:
				// Pending cannot happen behind ResolveSession; render the
				// neutral indicator anyway rather than guessing.
				return ui.render(c, http.StatusOK, "pending", map[string]any{
					"Title": "Loading",
				})
			}
		}
	}
}

// loginURL builds /login with the attempted location attached, so the
// post-login redirect can send the user back.
func loginURL(returnTo string) string {
	if returnTo == "" || returnTo == "/" {
		return "/login"
	}
	return "/login?returnTo=" + url.QueryEscape(returnTo)
}

// safeReturnTo accepts only local paths; anything absolute or
// scheme-relative falls back to the role dashboard.
func safeReturnTo(raw string, sess *domain.Session) string {
	if raw != "" && raw[0] == '/' && (len(raw) < 2 || raw[1] != '/') {
		return raw
	}
	return sess.Role.DashboardPath()
}
