package timesheet

import (
	"context"
	"sort"
	"sync"
	"time"

	"hourlog.org/internal/auth"
)

// MemoryStore implements Store in process. Used by handler tests and local
// runs without a database.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	sheets map[int64]*TimeSheet
	now    func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory timesheet store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		sheets: make(map[int64]*TimeSheet),
		now:    time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, ts *TimeSheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	ts.ID = s.nextID
	s.nextID++
	ts.CreatedAt = now
	ts.UpdatedAt = now

	clone := *ts
	s.sheets[ts.ID] = &clone
	return nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id int64) (*TimeSheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts, ok := s.sheets[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	clone := *ts
	return &clone, nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]*TimeSheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sheets := make([]*TimeSheet, 0, len(s.sheets))
	for _, ts := range s.sheets {
		clone := *ts
		sheets = append(sheets, &clone)
	}
	sort.Slice(sheets, func(i, j int) bool { return sheets[i].ID < sheets[j].ID })
	return sheets, nil
}

func (s *MemoryStore) ListByUser(ctx context.Context, userID int64) ([]*TimeSheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sheets []*TimeSheet
	for _, ts := range s.sheets {
		if ts.UserID == userID {
			clone := *ts
			sheets = append(sheets, &clone)
		}
	}
	sort.Slice(sheets, func(i, j int) bool { return sheets[i].ID < sheets[j].ID })
	return sheets, nil
}

func (s *MemoryStore) Update(ctx context.Context, id int64, upd Update) (*TimeSheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.sheets[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	if !upd.IsZero() {
		if upd.Date != nil {
			ts.Date = *upd.Date
		}
		if upd.StartTime != nil {
			ts.StartTime = *upd.StartTime
		}
		if upd.EndTime != nil {
			ts.EndTime = *upd.EndTime
		}
		if upd.Description != nil {
			ts.Description = *upd.Description
		}
		if upd.Status != nil {
			ts.Status = *upd.Status
		}
		ts.UpdatedAt = s.now().UTC()
	}
	clone := *ts
	return &clone, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sheets[id]; !ok {
		return auth.ErrNotFound
	}
	delete(s.sheets, id)
	return nil
}
