package ui

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page. Awards are decorative here: a failed fetch
// leaves the section empty instead of failing the page.
func (ui *UI) Home(c echo.Context) error {
	ctx := c.Request().Context()
	awards, err := ui.backend.ListAwards(ctx, ui.tokenFrom(c))
	if err != nil {
		ui.logger.Debug().Err(err).Msg("awards unavailable for landing page")
	}
	return ui.render(c, http.StatusOK, "home", map[string]any{
		"Title":  "Welcome",
		"Awards": awards,
	})
}

// About renders the static company page.
func (ui *UI) About(c echo.Context) error {
	return ui.render(c, http.StatusOK, "about", map[string]any{
		"Title": "About",
	})
}

// PublicDepartments shows the department directory to visitors.
func (ui *UI) PublicDepartments(c echo.Context) error {
	ctx := c.Request().Context()
	departments, err := ui.backend.ListDepartments(ctx, ui.tokenFrom(c))
	toast, herr := ui.fetchToast(c, err, "departments")
	if herr != nil {
		return herr
	}
	data := map[string]any{
		"Title":       "Departments",
		"Departments": departments,
	}
	if toast != nil {
		data["Toast"] = toast
	}
	return ui.render(c, http.StatusOK, "departments_public", data)
}

// tokenFrom returns the resolved session's bearer token, or the raw cookie
// value when no session was resolved (public pages still forward it so the
// backend can personalise if it wants to).
func (ui *UI) tokenFrom(c echo.Context) string {
	if sess := sessionFrom(c); sess != nil {
		return sess.Token
	}
	return ui.credential(c)
}
