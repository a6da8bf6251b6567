package ui

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// credentialMaxAge bounds how long the browser keeps the bearer credential.
// The backend is still the authority: a dead token fails the profile check
// and gets discarded no matter what the cookie says.
const credentialMaxAge = 30 * 24 * time.Hour

// credential reads the stored bearer token, or "" when logged out.
func (ui *UI) credential(c echo.Context) string {
	cookie, err := c.Cookie(ui.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// storeCredential persists the bearer token in the browser. This cookie is
// the only client-side state the console keeps.
func (ui *UI) storeCredential(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     ui.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   ui.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(credentialMaxAge),
	})
}

// clearCredential erases the stored token.
func (ui *UI) clearCredential(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     ui.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   ui.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
