package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hourlog.org/internal/auth"
)

// Service applies the ownership and role rules to timesheet operations.
// Stateless; the decision logic lives in the auth package.
type Service struct {
	store Store
}

// NewService constructs the timesheet service.
func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, errors.New("timesheet: store is required")
	}
	return &Service{store: store}, nil
}

// CreateRequest carries the fields for a new entry. UserID is optional: an
// admin may record on behalf of another user; everyone else records for
// themselves.
type CreateRequest struct {
	UserID      int64
	Date        time.Time
	StartTime   time.Time
	EndTime     time.Time
	Description string
}

// Create records a new timesheet entry owned by the caller, or by the
// requested user when an admin says so.
func (s *Service) Create(ctx context.Context, p auth.Principal, req CreateRequest) (*TimeSheet, error) {
	owner := p.UserID
	if req.UserID != 0 && req.UserID != p.UserID {
		if !p.Role.IsAdmin() {
			return nil, auth.ErrForbidden
		}
		owner = req.UserID
	}
	if err := validateInterval(req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}

	ts := &TimeSheet{
		UserID:      owner,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		Status:      StatusPending,
	}
	if err := s.store.Create(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// Get fetches an entry for its owner or an admin.
func (s *Service) Get(ctx context.Context, p auth.Principal, id int64) (*TimeSheet, error) {
	ts, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanAccessResource(p, ts.UserID); err != nil {
		return nil, err
	}
	return ts, nil
}

// List returns every entry for admins and the caller's own entries for
// everyone else.
func (s *Service) List(ctx context.Context, p auth.Principal) ([]*TimeSheet, error) {
	if p.Role.IsAdmin() {
		return s.store.ListAll(ctx)
	}
	return s.store.ListByUser(ctx, p.UserID)
}

// Update applies a partial update. Status is a privileged field: a non-admin
// request carrying it is rejected wholesale, nothing is applied.
func (s *Service) Update(ctx context.Context, p auth.Principal, id int64, upd Update) (*TimeSheet, error) {
	ts, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanAccessResource(p, ts.UserID); err != nil {
		return nil, err
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", auth.ErrInvalidInput, *upd.Status)
		}
		if !p.Role.IsAdmin() {
			return nil, fmt.Errorf("%w: status may only be changed by an admin", auth.ErrInvalidInput)
		}
	}
	if upd.Description != nil {
		if err := validateDescription(*upd.Description); err != nil {
			return nil, err
		}
	}

	// Validate the interval that would result from the merge.
	date, start, end := ts.Date, ts.StartTime, ts.EndTime
	if upd.Date != nil {
		date = *upd.Date
	}
	if upd.StartTime != nil {
		start = *upd.StartTime
	}
	if upd.EndTime != nil {
		end = *upd.EndTime
	}
	if err := validateInterval(date, start, end); err != nil {
		return nil, err
	}

	return s.store.Update(ctx, id, upd)
}

// Delete removes an entry for its owner or an admin.
func (s *Service) Delete(ctx context.Context, p auth.Principal, id int64) error {
	ts, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CanAccessResource(p, ts.UserID); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
