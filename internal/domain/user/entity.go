package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Org admin - manages users, approves requests
	RoleEmployee Role = "employee" // Regular employee
)

// LeaveKind identifies one of the three independent leave balances.
type LeaveKind string

const (
	LeaveVacation LeaveKind = "vacation"
	LeaveSick     LeaveKind = "sick"
	LeavePersonal LeaveKind = "personal"
)

// Kinds lists all leave kinds in their fixed display order.
func Kinds() []LeaveKind {
	return []LeaveKind{LeaveVacation, LeaveSick, LeavePersonal}
}

// Quota is a per-kind total/used pair. Balances never borrow across kinds.
type Quota struct {
	Total float64 `json:"total"`
	Used  float64 `json:"used"`
}

type LeaveQuotas map[LeaveKind]Quota

// DefaultQuotas returns the quota set assigned to a newly created user.
func DefaultQuotas() LeaveQuotas {
	return LeaveQuotas{
		LeaveVacation: {Total: 14, Used: 0},
		LeaveSick:     {Total: 10, Used: 0},
		LeavePersonal: {Total: 5, Used: 0},
	}
}

type User struct {
	ID           string      `json:"id"`
	OrgID        string      `json:"orgId"`
	Email        string      `json:"email"`
	DisplayName  string      `json:"displayName"`
	PasswordHash *string     `json:"passwordHash,omitempty"`
	Role         Role        `json:"role"`
	IsActive     bool        `json:"isActive"`
	LeaveQuotas  LeaveQuotas `json:"leaveQuotas"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// IsAdmin checks if user can manage the org
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve leave and adjustment requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}
