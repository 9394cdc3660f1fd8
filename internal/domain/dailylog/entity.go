package dailylog

import (
	"fmt"
	"time"
)

// CompletedTicket is one auto-appended entry recorded when a ticket moves
// to done.
type CompletedTicket struct {
	TicketID    string    `json:"ticketId"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completedAt"`
}

// Log is one user's daily log. The document ID is "<userID>_<date>". Both
// lists are append-only in practice.
type Log struct {
	ID               string            `json:"id"`
	OrgID            string            `json:"orgId"`
	UserID           string            `json:"userId"`
	Date             string            `json:"date"` // "2006-01-02"
	ManualTasks      []string          `json:"manualTasks"`
	CompletedTickets []CompletedTicket `json:"completedTickets"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// DocID builds the composite document key for a user's log on a date.
func DocID(userID, date string) string {
	return fmt.Sprintf("%s_%s", userID, date)
}
