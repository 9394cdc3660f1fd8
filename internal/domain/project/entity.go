package project

import "time"

type Project struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"orgId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MemberIDs   []string  `json:"memberIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TicketStatus string

const (
	StatusTodo       TicketStatus = "todo"
	StatusInProgress TicketStatus = "in-progress"
	StatusDone       TicketStatus = "done"
)

// Statuses lists the three fixed board columns in display order.
func Statuses() []TicketStatus {
	return []TicketStatus{StatusTodo, StatusInProgress, StatusDone}
}

// Ticket belongs to a project. Order is a per-column sort key maintained by
// manual drag ordering; gaps between values are tolerated indefinitely.
// CompletedAt is set exactly when status transitions to done and left
// untouched by any other transition.
type Ticket struct {
	ID          string       `json:"id"`
	OrgID       string       `json:"orgId"`
	ProjectID   string       `json:"projectId"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	AssigneeID  *string      `json:"assigneeId,omitempty"`
	Status      TicketStatus `json:"status"`
	Order       float64      `json:"order"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Board is the column projection of a project's tickets.
type Board struct {
	Todo       []Ticket `json:"todo"`
	InProgress []Ticket `json:"inProgress"`
	Done       []Ticket `json:"done"`
}

// OrderUpdate is one entry of a batch reorder. The whole batch is applied
// as a single atomic write.
type OrderUpdate struct {
	TicketID string       `json:"ticketId"`
	Status   TicketStatus `json:"status"`
	Order    float64      `json:"order"`
}
