package auth

import "context"

// Store is the durable record of identities consulted by the auth service.
// Emails are stored lowercased; lookups are case-insensitive.
type Store interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id int64, upd UserUpdate) (*User, error)
	// Deactivate flips the active flag. Deactivating an already-inactive
	// user is an idempotent no-op: it succeeds without touching updated_at.
	Deactivate(ctx context.Context, id int64) error
}
