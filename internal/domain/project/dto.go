package project

import (
	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	OrgID       string   `json:"-"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	MemberIDs   []string `json:"memberIds,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateTicketRequest struct {
	OrgID       string  `json:"-"`
	ProjectID   string  `json:"-"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
}

func (r *CreateTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MoveTicketRequest struct {
	OrgID     string  `json:"-"`
	ProjectID string  `json:"-"`
	TicketID  string  `json:"-"`
	Status    string  `json:"status"`
	Order     float64 `json:"order"`
}

func (r *MoveTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	statuses := []string{string(StatusTodo), string(StatusInProgress), string(StatusDone)}
	if !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be todo, in-progress or done",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReorderRequest struct {
	OrgID     string        `json:"-"`
	ProjectID string        `json:"-"`
	Updates   []OrderUpdate `json:"updates"`
}

func (r *ReorderRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Updates) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "updates",
			Message: "updates must not be empty",
		})
	}
	statuses := []string{string(StatusTodo), string(StatusInProgress), string(StatusDone)}
	for _, u := range r.Updates {
		if validator.IsEmpty(u.TicketID) {
			errs = append(errs, validator.ValidationError{
				Field:   "updates",
				Message: "every update needs a ticketId",
			})
			break
		}
		if !validator.IsInSlice(string(u.Status), statuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "updates",
				Message: "every update needs a valid status",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkDeleteTicketsRequest struct {
	OrgID     string   `json:"-"`
	ProjectID string   `json:"-"`
	IDs       []string `json:"ids"`
}

func (r *BulkDeleteTicketsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "ids must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter paginates project listings.
type ListFilter struct {
	Search string
	Page   int
	Limit  int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}
