package auth

import "time"

// User is the durable identity record. The password hash never leaves the
// process in responses.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate carries optional field changes; nil leaves a field unchanged.
// Role and Active are privileged fields, admin-only (see ValidateUserUpdate).
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Role      *Role
	Active    *bool
}

// IsZero reports whether the update changes nothing.
func (u UserUpdate) IsZero() bool {
	return u.FirstName == nil && u.LastName == nil && u.Role == nil && u.Active == nil
}

// Principal is the authenticated identity derived from a verified token.
// It is constructed per request and never persisted. Role and active state
// reflect the identity at issuance; a deactivated user keeps outstanding
// tokens until they expire.
type Principal struct {
	UserID int64
	Email  string
	Role   Role
}

// PrincipalFromClaims builds the per-request principal out of a verified
// claim set.
func PrincipalFromClaims(claims *Claims) (Principal, error) {
	if claims == nil {
		return Principal{}, ErrInvalidToken
	}
	id, err := claims.UserID()
	if err != nil {
		return Principal{}, err
	}
	if !claims.Role.Valid() {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: id, Email: claims.Email, Role: claims.Role}, nil
}
