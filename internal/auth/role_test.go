package auth

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"user", RoleUser},
		{"User", RoleUser},
		{" ADMIN ", RoleAdmin},
		{"admin", RoleAdmin},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "root", "superadmin"} {
		if _, err := ParseRole(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseRole(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestRoleOrdering(t *testing.T) {
	if RoleAdmin.Level() <= RoleUser.Level() {
		t.Fatalf("admin must outrank user")
	}
	if Role("ghost").Level() != 0 {
		t.Fatalf("unknown roles rank below everything")
	}
	if Role("ghost").Valid() {
		t.Fatalf("unknown role must not be valid")
	}
	if !RoleAdmin.IsAdmin() || RoleUser.IsAdmin() {
		t.Fatalf("IsAdmin mismatch")
	}
}
