package fixtures

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
)

// Fixed IDs so fixture-mode clients and tests can address seeded documents
// directly.
const (
	OrgID = "org-demo"

	AdminID    = "usr-admin"
	AliceID    = "usr-alice"
	BobID      = "usr-bob"
	AdminEmail = "admin@pulse.dev"
	AliceEmail = "alice@pulse.dev"
	BobEmail   = "bob@pulse.dev"

	// Every seeded user authenticates with this password in fixture mode.
	Password = "password123"

	ProjectID = "prj-onboarding"
)

// seedTime anchors all fixture timestamps so repeated reads are identical.
var seedTime = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

var (
	hashOnce     sync.Once
	passwordHash string
)

// PasswordHash returns the bcrypt hash shared by all seeded users.
func PasswordHash() string {
	hashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.DefaultCost)
		if err != nil {
			panic("fixtures: hashing seed password: " + err.Error())
		}
		passwordHash = string(hash)
	})
	return passwordHash
}

// Org returns the seeded demo tenant.
func Org() org.Org {
	return org.Org{
		ID:        OrgID,
		Name:      "Pulse Demo",
		Slug:      "pulse-demo",
		OwnerID:   AdminID,
		IsActive:  true,
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	}
}

// Users returns the fixed 3-entry user list: one admin and two employees.
// The slice and its quota maps are fresh copies on every call.
func Users() []user.User {
	hash := PasswordHash()
	return []user.User{
		{
			ID:           AdminID,
			OrgID:        OrgID,
			Email:        AdminEmail,
			DisplayName:  "Dana Admin",
			PasswordHash: &hash,
			Role:         user.RoleAdmin,
			IsActive:     true,
			LeaveQuotas:  user.DefaultQuotas(),
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:           AliceID,
			OrgID:        OrgID,
			Email:        AliceEmail,
			DisplayName:  "Alice Carter",
			PasswordHash: &hash,
			Role:         user.RoleEmployee,
			IsActive:     true,
			LeaveQuotas:  user.DefaultQuotas(),
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:           BobID,
			OrgID:        OrgID,
			Email:        BobEmail,
			DisplayName:  "Bob Nguyen",
			PasswordHash: &hash,
			Role:         user.RoleEmployee,
			IsActive:     true,
			LeaveQuotas:  user.DefaultQuotas(),
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
	}
}

// Projects returns the seeded demo project.
func Projects() []project.Project {
	return []project.Project{
		{
			ID:          ProjectID,
			OrgID:       OrgID,
			Name:        "Onboarding",
			Description: "Getting-started board for the demo org",
			MemberIDs:   []string{AdminID, AliceID, BobID},
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
	}
}

// Tickets returns the seeded board: two todo, one in progress, one done.
func Tickets() []project.Ticket {
	doneAt := seedTime.Add(26 * time.Hour)
	alice := AliceID
	bob := BobID
	return []project.Ticket{
		{
			ID:        "tkt-1001",
			OrgID:     OrgID,
			ProjectID: ProjectID,
			Title:     "Set up workspace",
			Status:    project.StatusTodo,
			Order:     1,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:         "tkt-1002",
			OrgID:      OrgID,
			ProjectID:  ProjectID,
			Title:      "Review handbook",
			AssigneeID: &bob,
			Status:     project.StatusTodo,
			Order:      2,
			CreatedAt:  seedTime,
			UpdatedAt:  seedTime,
		},
		{
			ID:         "tkt-1003",
			OrgID:      OrgID,
			ProjectID:  ProjectID,
			Title:      "Meet the team",
			AssigneeID: &alice,
			Status:     project.StatusInProgress,
			Order:      1,
			CreatedAt:  seedTime,
			UpdatedAt:  seedTime,
		},
		{
			ID:          "tkt-1004",
			OrgID:       OrgID,
			ProjectID:   ProjectID,
			Title:       "Sign paperwork",
			AssigneeID:  &alice,
			Status:      project.StatusDone,
			Order:       1,
			CompletedAt: &doneAt,
			CreatedAt:   seedTime,
			UpdatedAt:   doneAt,
		},
	}
}
