package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNextRun(t *testing.T) {
	tests := []struct {
		name   string
		now    string
		hour   int
		minute int
		want   string
	}{
		{
			name: "later today",
			now:  "2025-03-03T08:00:00Z", hour: 23, minute: 30,
			want: "2025-03-03T23:30:00Z",
		},
		{
			name: "already passed rolls to tomorrow",
			now:  "2025-03-03T08:00:00Z", hour: 0, minute: 5,
			want: "2025-03-04T00:05:00Z",
		},
		{
			name: "exactly now rolls to tomorrow",
			now:  "2025-03-03T00:05:00Z", hour: 0, minute: 5,
			want: "2025-03-04T00:05:00Z",
		},
		{
			name: "month boundary",
			now:  "2025-03-31T12:00:00Z", hour: 0, minute: 5,
			want: "2025-04-01T00:05:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.Parse(time.RFC3339, tt.now)
			if err != nil {
				t.Fatalf("parse now: %v", err)
			}
			want, err := time.Parse(time.RFC3339, tt.want)
			if err != nil {
				t.Fatalf("parse want: %v", err)
			}
			got := nextRun(now, tt.hour, tt.minute)
			if !got.Equal(want) {
				t.Errorf("nextRun(%s, %d, %d) = %s, want %s", tt.now, tt.hour, tt.minute, got, want)
			}
		})
	}
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var intervalRuns, dailyRuns int
	s.AddJob("interval", time.Hour, func(ctx context.Context) error {
		intervalRuns++
		return nil
	})
	s.AddDailyJob("daily", 0, 5, func(ctx context.Context) error {
		dailyRuns++
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	if intervalRuns != 1 {
		t.Errorf("interval job ran %d times, want 1", intervalRuns)
	}
	if dailyRuns != 1 {
		t.Errorf("daily job ran %d times, want 1", dailyRuns)
	}
}
