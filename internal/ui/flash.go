package ui

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "alc_flash"

// Toast is a one-shot notification shown on the next rendered page. It
// lives in a cookie consumed on read, so a dismissed or rendered toast can
// never fire again — there is no server-side timer to leak.
type Toast struct {
	Message string `json:"message"`
	Kind    string `json:"kind"` // "success", "error", "info"
}

// flash queues a toast for the next render.
func (ui *UI) flash(c echo.Context, kind, message string) {
	raw, err := json.Marshal(Toast{Message: message, Kind: kind})
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   ui.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// consumeFlash pops the pending toast, if any.
func (ui *UI) consumeFlash(c echo.Context) *Toast {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var t Toast
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil
	}
	return &t
}
