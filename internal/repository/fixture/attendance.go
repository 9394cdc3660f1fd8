package fixture

import (
	"context"

	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.Repository {
	return &attendanceRepository{store: store}
}

// Get implements attendance.Repository.
func (r *attendanceRepository) Get(ctx context.Context, userID string, date string, orgID string) (*attendance.Record, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.attendance[attendance.DocID(userID, date)]
	if !ok || rec.OrgID != orgID {
		return nil, nil
	}
	out := rec
	return &out, nil
}

// Put implements attendance.Repository.
func (r *attendanceRepository) Put(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	if err := r.store.simulate(ctx); err != nil {
		return attendance.Record{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.attendance[record.ID] = record
	return record, nil
}

// ListByUser implements attendance.Repository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, from, to string, orgID string) ([]attendance.Record, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	matched := make([]attendance.Record, 0)
	for _, rec := range r.store.attendance {
		if rec.UserID != userID || rec.OrgID != orgID {
			continue
		}
		if from != "" && rec.Date < from {
			continue
		}
		if to != "" && rec.Date > to {
			continue
		}
		matched = append(matched, rec)
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b attendance.Record) bool {
		return a.Date < b.Date
	})
	return matched, nil
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter, orgID string) ([]attendance.Record, int64, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	r.store.mu.RLock()
	matched := make([]attendance.Record, 0)
	for _, rec := range r.store.attendance {
		if rec.OrgID != orgID {
			continue
		}
		if filter.UserID != "" && rec.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		if filter.From != "" && rec.Date < filter.From {
			continue
		}
		if filter.To != "" && rec.Date > filter.To {
			continue
		}
		matched = append(matched, rec)
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b attendance.Record) bool {
		if a.Date != b.Date {
			return a.Date > b.Date // newest first for the admin view
		}
		return a.UserID < b.UserID
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}
