package ui

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

// LoginPage renders the sign-in form. An already-authenticated user is sent
// straight to their dashboard.
func (ui *UI) LoginPage(c echo.Context) error {
	if sess := sessionFrom(c); sess != nil {
		return c.Redirect(http.StatusSeeOther, sess.Role.DashboardPath())
	}
	return ui.render(c, http.StatusOK, "login", map[string]any{
		"Title":    "Sign in",
		"Error":    "",
		"Email":    "",
		"ReturnTo": c.QueryParam("returnTo"),
	})
}

// Login handles the sign-in form post. Failure re-renders the form with the
// message inline and the email preserved; success stores the credential and
// redirects to the attempted location, or the role dashboard.
func (ui *UI) Login(c echo.Context) error {
	var in domain.LoginInput
	if err := c.Bind(&in); err != nil {
		return ui.loginError(c, in, "Login failed. Please try again.")
	}
	if err := c.Validate(&in); err != nil {
		return ui.loginError(c, in, validationMessage(err))
	}

	sess, message, err := ui.sessions.Login(c.Request().Context(), in)
	if err != nil {
		return ui.loginError(c, in, message)
	}

	ui.storeCredential(c, sess.Token)
	return c.Redirect(http.StatusSeeOther, safeReturnTo(c.FormValue("returnTo"), sess))
}

func (ui *UI) loginError(c echo.Context, in domain.LoginInput, message string) error {
	return ui.render(c, http.StatusUnprocessableEntity, "login", map[string]any{
		"Title":    "Sign in",
		"Error":    message,
		"Email":    in.Email,
		"ReturnTo": c.FormValue("returnTo"),
	})
}

// RegisterPage renders the account creation form.
func (ui *UI) RegisterPage(c echo.Context) error {
	if sess := sessionFrom(c); sess != nil {
		return c.Redirect(http.StatusSeeOther, sess.Role.DashboardPath())
	}
	return ui.render(c, http.StatusOK, "register", map[string]any{
		"Title":     "Register",
		"Error":     "",
		"Username":  "",
		"Email":     "",
		"RoleValue": "Client",
	})
}

// Register handles the account creation post. A successful registration
// signs the new account in immediately.
func (ui *UI) Register(c echo.Context) error {
	var in domain.RegisterInput
	if err := c.Bind(&in); err != nil {
		return ui.registerError(c, in, "Registration failed. Please try again.")
	}
	// Self-service registration never mints administrators.
	if in.Role == "" || domain.RoleAdmin.Is(in.Role) {
		in.Role = string(domain.RoleClient)
	}
	if err := c.Validate(&in); err != nil {
		return ui.registerError(c, in, validationMessage(err))
	}

	sess, message, err := ui.sessions.Register(c.Request().Context(), in)
	if err != nil {
		return ui.registerError(c, in, message)
	}

	ui.storeCredential(c, sess.Token)
	return c.Redirect(http.StatusSeeOther, sess.Role.DashboardPath())
}

func (ui *UI) registerError(c echo.Context, in domain.RegisterInput, message string) error {
	role := in.Role
	if role == "" {
		role = "Client"
	}
	return ui.render(c, http.StatusUnprocessableEntity, "register", map[string]any{
		"Title":     "Register",
		"Error":     message,
		"Username":  in.Username,
		"Email":     in.Email,
		"RoleValue": role,
	})
}

// Logout retires the credential locally and, best-effort, server-side. It
// always lands on the login page regardless of what the backend said.
func (ui *UI) Logout(c echo.Context) error {
	if token := ui.credential(c); token != "" {
		ui.sessions.Logout(c.Request().Context(), token)
	}
	ui.clearCredential(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
