package leave

import (
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	UserID    string `json:"-"`
	OrgID     string `json:"-"`
	Kind      string `json:"kind"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Duration  string `json:"duration"`
	Reason    string `json:"reason,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	kinds := []string{
		string(user.LeaveVacation),
		string(user.LeaveSick),
		string(user.LeavePersonal),
	}
	if !validator.IsInSlice(r.Kind, kinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be vacation, sick or personal",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if !validator.IsInSlice(r.Duration, []string{string(DurationFullDay), string(DurationHalfDay)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration",
			Message: "duration must be full-day or half-day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResolveRequestRequest struct {
	ID         string `json:"-"`
	OrgID      string `json:"-"`
	ResolvedBy string `json:"-"`
}

// ListFilter narrows and paginates the admin leave request listing.
type ListFilter struct {
	UserID string
	Status *RequestStatus
	Kind   *user.LeaveKind
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
