package timesheet

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hourlog.org/internal/auth"
)

var (
	owner    = auth.Principal{UserID: 1, Email: "owner@x.com", Role: auth.RoleUser}
	stranger = auth.Principal{UserID: 2, Email: "other@x.com", Role: auth.RoleUser}
	admin    = auth.Principal{UserID: 3, Email: "admin@x.com", Role: auth.RoleAdmin}
)

func testService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(NewMemoryStore())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func validRequest() CreateRequest {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	return CreateRequest{
		Date:        day,
		StartTime:   day.Add(9 * time.Hour),
		EndTime:     day.Add(17 * time.Hour),
		Description: "regular shift",
	}
}

func TestCreateDefaultsToCaller(t *testing.T) {
	svc := testService(t)

	ts, err := svc.Create(context.Background(), owner, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ts.UserID != owner.UserID {
		t.Fatalf("expected owner %d, got %d", owner.UserID, ts.UserID)
	}
	if ts.Status != StatusPending {
		t.Fatalf("new entries start pending, got %q", ts.Status)
	}
	if ts.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestCreateOnBehalf(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	req := validRequest()
	req.UserID = owner.UserID
	if _, err := svc.Create(ctx, stranger, req); !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("non-admin creating for someone else: expected ErrForbidden, got %v", err)
	}
	ts, err := svc.Create(ctx, admin, req)
	if err != nil {
		t.Fatalf("admin create on behalf: %v", err)
	}
	if ts.UserID != owner.UserID {
		t.Fatalf("expected owner %d, got %d", owner.UserID, ts.UserID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	req := validRequest()
	req.EndTime = req.StartTime
	if _, err := svc.Create(ctx, owner, req); !errors.Is(err, auth.ErrInvalidInput) {
		t.Fatalf("end == start: expected ErrInvalidInput, got %v", err)
	}

	req = validRequest()
	req.Date = time.Time{}
	if _, err := svc.Create(ctx, owner, req); !errors.Is(err, auth.ErrInvalidInput) {
		t.Fatalf("missing date: expected ErrInvalidInput, got %v", err)
	}

	req = validRequest()
	req.Description = strings.Repeat("x", maxDescriptionLen+1)
	if _, err := svc.Create(ctx, owner, req); !errors.Is(err, auth.ErrInvalidInput) {
		t.Fatalf("oversize description: expected ErrInvalidInput, got %v", err)
	}
}

func TestGetOwnershipGate(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(ctx, owner, created.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := svc.Get(ctx, admin, created.ID); err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if _, err := svc.Get(ctx, stranger, created.ID); !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("stranger get: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(ctx, admin, 999); !errors.Is(err, auth.ErrNotFound) {
		t.Fatalf("missing entry: expected ErrNotFound, got %v", err)
	}
}

func TestListScopedByRole(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, owner, validRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, stranger, validRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := svc.List(ctx, admin)
	if err != nil {
		t.Fatalf("admin List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin sees all entries, got %d", len(all))
	}

	own, err := svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("owner List: %v", err)
	}
	if len(own) != 1 || own[0].UserID != owner.UserID {
		t.Fatalf("owner must see only their own entries, got %+v", own)
	}
}

func TestUpdateStatusAdminOnly(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	approved := StatusApproved
	desc := "tweaked"
	if _, err := svc.Update(ctx, owner, created.ID, Update{Description: &desc, Status: &approved}); !errors.Is(err, auth.ErrInvalidInput) {
		t.Fatalf("non-admin status change: expected ErrInvalidInput, got %v", err)
	}
	// Whole update rejected: the benign description change did not land.
	current, err := svc.Get(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if current.Description != "regular shift" || current.Status != StatusPending {
		t.Fatalf("partial update leaked through: %+v", current)
	}

	updated, err := svc.Update(ctx, admin, created.ID, Update{Status: &approved})
	if err != nil {
		t.Fatalf("admin status change: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Fatalf("status not applied: %+v", updated)
	}
}

func TestUpdateValidatesMergedInterval(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Moving the end before the existing start must fail even though the
	// update by itself looks harmless.
	badEnd := created.StartTime.Add(-time.Hour)
	if _, err := svc.Update(ctx, owner, created.ID, Update{EndTime: &badEnd}); !errors.Is(err, auth.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted interval, got %v", err)
	}
}

func TestDeleteOwnershipGate(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, stranger, created.ID); !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("stranger delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, owner, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.Get(ctx, admin, created.ID); !errors.Is(err, auth.ErrNotFound) {
		t.Fatalf("deleted entry: expected ErrNotFound, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	for raw, want := range map[string]Status{
		"pending":  StatusPending,
		"Approved": StatusApproved,
		" REJECTED ": StatusRejected,
	} {
		got, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseStatus("done"); !errors.Is(err, auth.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}
