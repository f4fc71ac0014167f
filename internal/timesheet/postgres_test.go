package timesheet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"hourlog.org/internal/auth"
)

func TestPGStoreCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	store := NewPGStore(db)

	now := time.Now().UTC()
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("insert into timesheets").
		WithArgs(int64(1), day, day.Add(9*time.Hour), day.Add(17*time.Hour), "shift", "Pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

	ts := &TimeSheet{
		UserID:      1,
		Date:        day,
		StartTime:   day.Add(9 * time.Hour),
		EndTime:     day.Add(17 * time.Hour),
		Description: "shift",
		Status:      StatusPending,
	}
	if err := store.Create(context.Background(), ts); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ts.ID != 10 {
		t.Fatalf("expected assigned id, got %d", ts.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	store := NewPGStore(db)

	cols := []string{"id", "user_id", "date", "start_time", "end_time", "description", "status", "created_at", "updated_at"}
	mock.ExpectQuery("select .* from timesheets where id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(cols))

	if _, err := store.FindByID(context.Background(), 99); !errors.Is(err, auth.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	store := NewPGStore(db)

	mock.ExpectExec("delete from timesheets").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.Delete(context.Background(), 7); !errors.Is(err, auth.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
