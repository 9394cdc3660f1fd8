package analytics

// Summary is the org-scoped aggregate view computed on demand from the
// other collections; analytics has no collection of its own.
type Summary struct {
	Headcount          int                `json:"headcount"`
	ActiveUsers        int                `json:"activeUsers"`
	AttendanceByStatus map[string]int     `json:"attendanceByStatus"`
	LeaveDaysByKind    map[string]float64 `json:"leaveDaysByKind"`
	PendingLeave       int                `json:"pendingLeave"`
	PendingAdjustments int                `json:"pendingAdjustments"`
	TicketsCompleted   int                `json:"ticketsCompleted"`
}

// SummaryFilter bounds the attendance and leave aggregates to an inclusive
// date range; empty bounds mean unbounded.
type SummaryFilter struct {
	From string
	To   string
}
