package timesheet

import "context"

// Store persists timesheet records. Implementations return the auth package
// sentinels for missing records so the HTTP layer maps one taxonomy.
type Store interface {
	Create(ctx context.Context, ts *TimeSheet) error
	FindByID(ctx context.Context, id int64) (*TimeSheet, error)
	ListAll(ctx context.Context) ([]*TimeSheet, error)
	ListByUser(ctx context.Context, userID int64) ([]*TimeSheet, error)
	Update(ctx context.Context, id int64, upd Update) (*TimeSheet, error)
	Delete(ctx context.Context, id int64) error
}
