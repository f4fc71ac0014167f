package timesheet

import (
	"fmt"
	"strings"
	"time"

	"hourlog.org/internal/auth"
)

// Status is the approval state of a timesheet entry. Closed set.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus maps a presented status name onto the closed set,
// case-insensitively.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", auth.ErrInvalidInput, raw)
	}
}

// Valid reports whether the status belongs to the closed set.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

func (s Status) String() string { return string(s) }

const maxDescriptionLen = 500

// TimeSheet is a single recorded work interval owned by a user.
type TimeSheet struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Date        time.Time `json:"date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Update carries optional field changes; nil leaves a field unchanged.
// Status is a privileged field: admin-only.
type Update struct {
	Date        *time.Time
	StartTime   *time.Time
	EndTime     *time.Time
	Description *string
	Status      *Status
}

// IsZero reports whether the update changes nothing.
func (u Update) IsZero() bool {
	return u.Date == nil && u.StartTime == nil && u.EndTime == nil &&
		u.Description == nil && u.Status == nil
}

func validateInterval(date, start, end time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", auth.ErrInvalidInput)
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end times are required", auth.ErrInvalidInput)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", auth.ErrInvalidInput)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > maxDescriptionLen {
		return fmt.Errorf("%w: description cannot exceed %d characters", auth.ErrInvalidInput, maxDescriptionLen)
	}
	return nil
}
