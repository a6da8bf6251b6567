// Package guard decides whether a session may see a protected view. The
// decision is derived state: computed on every request from the session and
// the attempted location, never stored.
package guard

import "github.com/iamselvaperumal/alc-console/internal/core/domain"

// Outcome is the guard's verdict for one navigation attempt.
type Outcome int

const (
	// Pending means the session is still being resolved; render a neutral
	// indicator and make no authorization decision yet.
	Pending Outcome = iota
	// RedirectToLogin means nobody is logged in.
	RedirectToLogin
	// Unauthorized means the user is authenticated but the route demands a
	// different role. No redirect: the user stays where they are and sees a
	// notice.
	Unauthorized
	// Render admits the user.
	Render
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case RedirectToLogin:
		return "redirect_login"
	case Unauthorized:
		return "unauthorized"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Decision is the full verdict; ReturnTo carries the attempted location so a
// post-login redirect can send the user back.
type Decision struct {
	Outcome  Outcome
	ReturnTo string
}

// Evaluate computes the verdict for one request. requiredRole compares
// case-insensitively; an empty requiredRole admits any authenticated user.
func Evaluate(sess *domain.Session, resolving bool, requiredRole, location string) Decision {
	if resolving {
		return Decision{Outcome: Pending}
	}
	if sess == nil {
		return Decision{Outcome: RedirectToLogin, ReturnTo: location}
	}
	if !sess.HasRole(requiredRole) {
		return Decision{Outcome: Unauthorized}
	}
	return Decision{Outcome: Render}
}
