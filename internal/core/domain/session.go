package domain

import "strings"

// Role is the dashboard tree a user belongs to.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
	RoleClient   Role = "Client"
)

// dashboardPaths is the explicit role→route mapping. Kept as an enumeration
// rather than deriving the path from the role string, so a renamed or
// re-cased role fails loudly instead of producing a dead URL.
var dashboardPaths = map[Role]string{
	RoleAdmin:    "/admin",
	RoleEmployee: "/employee",
	RoleClient:   "/client",
}

// ParseRole normalises a role string from the backend or a form.
// Unknown values return false.
func ParseRole(s string) (Role, bool) {
	for _, r := range []Role{RoleAdmin, RoleEmployee, RoleClient} {
		if r.Is(s) {
			return r, true
		}
	}
	return "", false
}

// Is reports whether s names this role, case-insensitively.
func (r Role) Is(s string) bool {
	return strings.EqualFold(string(r), s)
}

// DashboardPath returns the root route of the role's dashboard tree,
// or "/" for an unknown role.
func (r Role) DashboardPath() string {
	if p, ok := dashboardPaths[r]; ok {
		return p
	}
	return "/"
}

// Session is the client-held record of the authenticated user. It is created
// from a login/register/profile response and lives for at most the lifetime
// of the bearer credential; the role never changes without re-authentication.
type Session struct {
	UserID   string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Token    string `json:"-"`
}

// HasRole reports whether the session's role matches the given name,
// case-insensitively. An empty requirement always matches.
func (s *Session) HasRole(required string) bool {
	if required == "" {
		return true
	}
	return s.Role.Is(required)
}
