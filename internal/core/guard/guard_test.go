package guard

import (
	"testing"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

func TestEvaluate(t *testing.T) {
	admin := &domain.Session{Username: "root", Role: domain.RoleAdmin}
	client := &domain.Session{Username: "acme", Role: domain.RoleClient}

	tests := []struct {
		name      string
		sess      *domain.Session
		resolving bool
		role      string
		location  string
		want      Outcome
		returnTo  string
	}{
		{name: "resolving wins over everything", sess: nil, resolving: true, role: "Admin", want: Pending},
		{name: "resolving even with a session", sess: admin, resolving: true, role: "Admin", want: Pending},
		{name: "anonymous is redirected", sess: nil, role: "Admin", location: "/admin/payroll", want: RedirectToLogin, returnTo: "/admin/payroll"},
		{name: "matching role renders", sess: admin, role: "Admin", want: Render},
		{name: "role match is case-insensitive", sess: admin, role: "admin", want: Render},
		{name: "role match is case-insensitive upper", sess: client, role: "CLIENT", want: Render},
		{name: "wrong role is unauthorized, not redirected", sess: client, role: "Admin", want: Unauthorized},
		{name: "empty requirement admits any session", sess: client, role: "", want: Render},
		{name: "empty requirement still redirects anonymous", sess: nil, role: "", location: "/x", want: RedirectToLogin, returnTo: "/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.sess, tt.resolving, tt.role, tt.location)
			if d.Outcome != tt.want {
				t.Fatalf("outcome = %s, want %s", d.Outcome, tt.want)
			}
			if d.ReturnTo != tt.returnTo {
				t.Fatalf("returnTo = %q, want %q", d.ReturnTo, tt.returnTo)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if Pending.String() != "pending" || Render.String() != "render" {
		t.Fatalf("unexpected outcome strings: %s %s", Pending, Render)
	}
	if Outcome(99).String() != "unknown" {
		t.Fatalf("unexpected label for out-of-range outcome")
	}
}
