package auth

import (
	"fmt"
	"strings"
)

// Role is a closed set of privilege levels. Free-form role strings never
// enter the system; everything goes through ParseRole.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole maps a stored or presented role name onto the closed set.
// Comparison is case-insensitive.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, raw)
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether the role carries administrative privilege.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Level orders roles by privilege so comparisons are explicit rather than
// string-based. Unknown roles rank below everything.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

func (r Role) String() string { return string(r) }
