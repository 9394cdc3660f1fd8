package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"single weekday", date(2025, 3, 3), date(2025, 3, 3), 1},
		{"full week", date(2025, 3, 3), date(2025, 3, 7), 5},
		{"spanning weekend", date(2025, 3, 7), date(2025, 3, 10), 2},
		{"weekend only", date(2025, 3, 1), date(2025, 3, 2), 0},
		{"two weeks", date(2025, 3, 3), date(2025, 3, 14), 10},
		{"reversed range", date(2025, 3, 7), date(2025, 3, 3), 0},
	}
	for _, c := range cases {
		if got := BusinessDays(c.start, c.end); got != c.want {
			t.Errorf("%s: BusinessDays(%s, %s) = %v, want %v",
				c.name, c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestRequestStatusIsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() {
		t.Error("pending must not be terminal")
	}
	for _, s := range []RequestStatus{StatusApproved, StatusRejected, StatusCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s must be terminal", s)
		}
	}
}
