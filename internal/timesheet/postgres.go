package timesheet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hourlog.org/internal/auth"
)

const sheetColumns = `id, user_id, date, start_time, end_time, description, status, created_at, updated_at`

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

var _ Store = (*PGStore)(nil)

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, ts *TimeSheet) error {
	row := s.db.QueryRowContext(ctx,
		`insert into timesheets(user_id, date, start_time, end_time, description, status)
		 values($1,$2,$3,$4,$5,$6)
		 returning id, created_at, updated_at`,
		ts.UserID, ts.Date, ts.StartTime, ts.EndTime, ts.Description, string(ts.Status),
	)
	return row.Scan(&ts.ID, &ts.CreatedAt, &ts.UpdatedAt)
}

func (s *PGStore) FindByID(ctx context.Context, id int64) (*TimeSheet, error) {
	row := s.db.QueryRowContext(ctx,
		`select `+sheetColumns+` from timesheets where id=$1`, id)
	return scanSheet(row)
}

func (s *PGStore) ListAll(ctx context.Context) ([]*TimeSheet, error) {
	rows, err := s.db.QueryContext(ctx,
		`select `+sheetColumns+` from timesheets order by id`)
	if err != nil {
		return nil, err
	}
	return collectSheets(rows)
}

func (s *PGStore) ListByUser(ctx context.Context, userID int64) ([]*TimeSheet, error) {
	rows, err := s.db.QueryContext(ctx,
		`select `+sheetColumns+` from timesheets where user_id=$1 order by id`, userID)
	if err != nil {
		return nil, err
	}
	return collectSheets(rows)
}

func (s *PGStore) Update(ctx context.Context, id int64, upd Update) (*TimeSheet, error) {
	var (
		sets []string
		args []any
		idx  = 1
	)
	if upd.Date != nil {
		sets = append(sets, fmt.Sprintf("date = $%d", idx))
		args = append(args, *upd.Date)
		idx++
	}
	if upd.StartTime != nil {
		sets = append(sets, fmt.Sprintf("start_time = $%d", idx))
		args = append(args, *upd.StartTime)
		idx++
	}
	if upd.EndTime != nil {
		sets = append(sets, fmt.Sprintf("end_time = $%d", idx))
		args = append(args, *upd.EndTime)
		idx++
	}
	if upd.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", idx))
		args = append(args, *upd.Description)
		idx++
	}
	if upd.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(*upd.Status))
		idx++
	}
	if len(sets) > 0 {
		sets = append(sets, "updated_at = now()")
		query := fmt.Sprintf(`update timesheets set %s where id = $%d`, strings.Join(sets, ", "), idx)
		args = append(args, id)
		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		aff, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if aff == 0 {
			return nil, auth.ErrNotFound
		}
	}
	return s.FindByID(ctx, id)
}

func (s *PGStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from timesheets where id=$1`, id)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func scanSheet(row *sql.Row) (*TimeSheet, error) {
	var ts TimeSheet
	var status string
	if err := row.Scan(&ts.ID, &ts.UserID, &ts.Date, &ts.StartTime, &ts.EndTime, &ts.Description, &status, &ts.CreatedAt, &ts.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}
		return nil, err
	}
	ts.Status = Status(status)
	return &ts, nil
}

func collectSheets(rows *sql.Rows) ([]*TimeSheet, error) {
	defer rows.Close()

	var sheets []*TimeSheet
	for rows.Next() {
		var ts TimeSheet
		var status string
		if err := rows.Scan(&ts.ID, &ts.UserID, &ts.Date, &ts.StartTime, &ts.EndTime, &ts.Description, &status, &ts.CreatedAt, &ts.UpdatedAt); err != nil {
			return nil, err
		}
		ts.Status = Status(status)
		sheets = append(sheets, &ts)
	}
	return sheets, rows.Err()
}
