package adjustment

import (
	"time"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether the status is one of the resolved states.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// Request asks an admin to correct the check-in/out times of one attendance
// record. Approval side-effects that record in the same transaction as the
// status change.
type Request struct {
	ID                string        `json:"id"`
	OrgID             string        `json:"orgId"`
	UserID            string        `json:"userId"`
	Date              string        `json:"date"` // "2006-01-02", identifies the attendance record
	RequestedCheckIn  *time.Time    `json:"requestedCheckIn,omitempty"`
	RequestedCheckOut *time.Time    `json:"requestedCheckOut,omitempty"`
	Reason            string        `json:"reason,omitempty"`
	Status            RequestStatus `json:"status"`
	ResolvedBy        *string       `json:"resolvedBy,omitempty"`
	ResolvedAt        *time.Time    `json:"resolvedAt,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}
