package leave

import (
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether the status is one of the resolved states.
// Resolved requests never transition again.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type DurationType string

const (
	DurationFullDay DurationType = "full-day"
	DurationHalfDay DurationType = "half-day"
)

type Request struct {
	ID            string         `json:"id"`
	OrgID         string         `json:"orgId"`
	UserID        string         `json:"userId"`
	Kind          user.LeaveKind `json:"kind"`
	StartDate     string         `json:"startDate"` // "2006-01-02"
	EndDate       string         `json:"endDate"`
	Duration      DurationType   `json:"duration"`
	DaysRequested float64        `json:"daysRequested"`
	Reason        string         `json:"reason,omitempty"`
	Status        RequestStatus  `json:"status"`
	IsOverdraft   bool           `json:"isOverdraft"`
	ResolvedBy    *string        `json:"resolvedBy,omitempty"`
	ResolvedAt    *time.Time     `json:"resolvedAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// BusinessDays counts the weekdays in the inclusive [start, end] range.
// Saturdays and Sundays never consume quota.
func BusinessDays(start, end time.Time) float64 {
	if end.Before(start) {
		return 0
	}
	var days float64
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// Balance is the derived per-kind view of a user's quota.
type Balance struct {
	Kind       user.LeaveKind `json:"kind"`
	Total      float64        `json:"total"`
	Used       float64        `json:"used"`
	Remaining  float64        `json:"remaining"`
	IsNegative bool           `json:"isNegative"`
}
