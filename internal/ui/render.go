package ui

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
	"github.com/iamselvaperumal/alc-console/internal/core/table"
)

// render composes the named page template into the layout. The resolved
// session, any pending toast, and the current path are injected so every
// template can rely on them.
func (ui *UI) render(c echo.Context, code int, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Session"]; !ok {
		data["Session"] = sessionFrom(c)
	}
	if _, ok := data["Toast"]; !ok {
		data["Toast"] = ui.consumeFlash(c)
	}
	data["Path"] = c.Request().URL.Path

	var buf bytes.Buffer
	if err := renderTemplate(&buf, name, data); err != nil {
		ui.logger.Error().Err(err).Str("template", name).Msg("render failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "template error")
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// tableState extracts the per-table view state from the query string. The
// search form and the sort links deliberately omit the page parameter, so
// changing either resets the page to 1.
func tableState(c echo.Context) table.State {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	return table.State{
		Query:   c.QueryParam("q"),
		SortKey: c.QueryParam("sort"),
		Desc:    c.QueryParam("dir") == "desc",
		Page:    page,
	}
}

// forceLogin performs the hard reset mandated for a 401 on a data call:
// erase the stored credential and navigate to the login view, dropping all
// page state on the floor.
func (ui *UI) forceLogin(c echo.Context) error {
	ui.clearCredential(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// fetchToast maps a failed record fetch to its page-level outcome. A 401
// means the credential died mid-session: hard reset. Everything else is
// reported as a toast on the still-rendered page, because one failed fetch
// must not take down the dashboard shell.
func (ui *UI) fetchToast(c echo.Context, err error, what string) (*Toast, error) {
	if err == nil {
		return nil, nil
	}
	if domain.StatusOf(err) == http.StatusUnauthorized {
		return nil, ui.forceLogin(c)
	}
	ui.logger.Warn().Err(err).Str("resource", what).Msg("fetch failed")
	return &Toast{Kind: "error", Message: "Failed to fetch " + what}, nil
}
