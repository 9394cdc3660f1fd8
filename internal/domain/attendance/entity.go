package attendance

import (
	"fmt"
	"math"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on-leave"
	StatusHalfDay Status = "half-day"
)

// Record is one user's attendance for one calendar day. The document ID is
// the composite key "<userID>_<date>", so at most one record exists per user
// per day.
type Record struct {
	ID           string     `json:"id"`
	OrgID        string     `json:"orgId"`
	UserID       string     `json:"userId"`
	Date         string     `json:"date"` // "2006-01-02"
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Status       Status     `json:"status"`
	TotalHours   *float64   `json:"totalHours,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// DocID builds the composite document key for a user's record on a date.
func DocID(userID, date string) string {
	return fmt.Sprintf("%s_%s", userID, date)
}

// HoursBetween computes worked hours between check-in and check-out,
// rounded to two decimal places.
func HoursBetween(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}
