package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"Admin", RoleAdmin, true},
		{"admin", RoleAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{"Employee", RoleEmployee, true},
		{"client", RoleClient, true},
		{"manager", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDashboardPath(t *testing.T) {
	if RoleAdmin.DashboardPath() != "/admin" {
		t.Fatalf("admin path = %q", RoleAdmin.DashboardPath())
	}
	if RoleEmployee.DashboardPath() != "/employee" {
		t.Fatalf("employee path = %q", RoleEmployee.DashboardPath())
	}
	if RoleClient.DashboardPath() != "/client" {
		t.Fatalf("client path = %q", RoleClient.DashboardPath())
	}
	if Role("ghost").DashboardPath() != "/" {
		t.Fatalf("unknown role should fall back to /")
	}
}

func TestSessionHasRole(t *testing.T) {
	s := &Session{Role: RoleEmployee}
	if !s.HasRole("employee") || !s.HasRole("EMPLOYEE") {
		t.Fatalf("role match should be case-insensitive")
	}
	if s.HasRole("Admin") {
		t.Fatalf("wrong role matched")
	}
	if !s.HasRole("") {
		t.Fatalf("empty requirement must always match")
	}
}
