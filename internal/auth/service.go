package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Service wires credential verification, token issuance and the
// authorization rules over the identity store. It holds no mutable state;
// everything but the store is fixed at construction.
type Service struct {
	store  Store
	tokens *TokenService
	cost   int
	now    func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service) error

// WithBcryptCost overrides the hashing work factor. Values outside the
// supported range are ignored.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) error {
		if cost > 0 {
			s.cost = cost
		}
		return nil
	}
}

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) error {
		if fn != nil {
			s.now = fn
		}
		return nil
	}
}

// NewService constructs the auth service. The token service must already be
// configured; misconfiguration surfaces there, at startup.
func NewService(store Store, tokens *TokenService, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("auth: store is required")
	}
	if tokens == nil {
		return nil, errors.New("auth: token service is required")
	}
	svc := &Service{
		store:  store,
		tokens: tokens,
		cost:   DefaultBcryptCost,
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(svc); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

// RegisterRequest carries the presented registration fields. Email syntax
// and password length policy are validated upstream; the service enforces
// only what the core invariants need.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new active identity with role User. A duplicate email
// is ErrConflict, whether caught by the pre-check or by the store's unique
// constraint under a race.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	exists, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	hash, err := HashPassword(req.Password, s.cost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         RoleUser,
		Active:       true,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginResult is returned on a successful credential verification.
type LoginResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// Login verifies the presented credential and mints a token. Unknown email,
// inactive account and wrong password all collapse to ErrUnauthenticated;
// the distinction is never surfaced to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrUnauthenticated
	}
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LoginResult{}, ErrUnauthenticated
		}
		return LoginResult{}, err
	}
	if !user.Active {
		return LoginResult{}, ErrUnauthenticated
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return LoginResult{}, ErrUnauthenticated
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate validates a presented bearer token and derives the request
// principal from its claims alone. The identity store is not consulted:
// deactivation takes effect for new logins immediately but outstanding
// tokens stay valid until expiry.
func (s *Service) Authenticate(token string) (Principal, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return Principal{}, err
	}
	return PrincipalFromClaims(claims)
}

// ListUsers is admin-only.
func (s *Service) ListUsers(ctx context.Context, p Principal) ([]*User, error) {
	if err := CanListUsers(p); err != nil {
		return nil, err
	}
	return s.store.List(ctx)
}

// GetUser allows self-or-admin access. Existence is only revealed after the
// authorization gate passes.
func (s *Service) GetUser(ctx context.Context, p Principal, id int64) (*User, error) {
	if err := CanAccessResource(p, id); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

// UpdateUser applies a partial update under the field-level rules: non-admin
// callers may touch display name fields only, and a privileged field in a
// non-admin request rejects the whole operation.
func (s *Service) UpdateUser(ctx context.Context, p Principal, id int64, upd UserUpdate) (*User, error) {
	if err := CanAccessResource(p, id); err != nil {
		return nil, err
	}
	if err := ValidateUserUpdate(p, upd); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, upd)
}

// DeactivateUser soft-deletes: the record stays, the active flag flips.
// Idempotent by the store contract.
func (s *Service) DeactivateUser(ctx context.Context, p Principal, id int64) error {
	if err := CanAccessResource(p, id); err != nil {
		return err
	}
	return s.store.Deactivate(ctx, id)
}
