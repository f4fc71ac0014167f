package auth

import "fmt"

// The decision engine is a set of pure predicates evaluated per request.
// Deny outcomes are distinguished: ErrForbidden means a valid identity with
// insufficient privilege; resource existence (ErrNotFound) is only checked
// after these gates pass.

// CanListUsers gates list-all and other admin-only actions.
func CanListUsers(p Principal) error {
	if !p.Role.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CanAccessResource allows access to a resource owned by ownerID for the
// owner themselves or for an admin.
func CanAccessResource(p Principal, ownerID int64) error {
	if p.Role.IsAdmin() {
		return nil
	}
	if p.UserID == ownerID {
		return nil
	}
	return ErrForbidden
}

// ValidateUserUpdate enforces the field-level restriction on updates:
// non-admin callers may change display name fields only. A non-admin request
// touching a privileged field (role, active flag) rejects the whole update;
// nothing is silently dropped.
func ValidateUserUpdate(p Principal, upd UserUpdate) error {
	if upd.Role != nil && !upd.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *upd.Role)
	}
	if p.Role.IsAdmin() {
		return nil
	}
	if upd.Role != nil || upd.Active != nil {
		return fmt.Errorf("%w: role and active status may only be changed by an admin", ErrInvalidInput)
	}
	return nil
}
