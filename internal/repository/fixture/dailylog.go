package fixture

import (
	"context"

	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
)

type dailyLogRepository struct {
	store *Store
}

func NewDailyLogRepository(store *Store) dailylog.Repository {
	return &dailyLogRepository{store: store}
}

func copyLog(l dailylog.Log) dailylog.Log {
	out := l
	out.ManualTasks = append([]string(nil), l.ManualTasks...)
	out.CompletedTickets = append([]dailylog.CompletedTicket(nil), l.CompletedTickets...)
	return out
}

// Get implements dailylog.Repository.
func (r *dailyLogRepository) Get(ctx context.Context, userID string, date string, orgID string) (*dailylog.Log, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	l, ok := r.store.logs[dailylog.DocID(userID, date)]
	if !ok || l.OrgID != orgID {
		return nil, nil
	}
	out := copyLog(l)
	return &out, nil
}

// Put implements dailylog.Repository.
func (r *dailyLogRepository) Put(ctx context.Context, log dailylog.Log) (dailylog.Log, error) {
	if err := r.store.simulate(ctx); err != nil {
		return dailylog.Log{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.logs[log.ID] = copyLog(log)
	return log, nil
}

// ListByUser implements dailylog.Repository.
func (r *dailyLogRepository) ListByUser(ctx context.Context, userID string, from, to string, orgID string) ([]dailylog.Log, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	matched := make([]dailylog.Log, 0)
	for _, l := range r.store.logs {
		if l.UserID != userID || l.OrgID != orgID {
			continue
		}
		if from != "" && l.Date < from {
			continue
		}
		if to != "" && l.Date > to {
			continue
		}
		matched = append(matched, copyLog(l))
	}
	r.store.mu.RUnlock()

	sortStable(matched, func(a, b dailylog.Log) bool {
		return a.Date < b.Date
	})
	return matched, nil
}
