package adjustment

import (
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	UserID            string `json:"-"`
	OrgID             string `json:"-"`
	Date              string `json:"date"`
	RequestedCheckIn  string `json:"requestedCheckIn,omitempty"`
	RequestedCheckOut string `json:"requestedCheckOut,omitempty"`
	Reason            string `json:"reason,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.RequestedCheckIn) && validator.IsEmpty(r.RequestedCheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "requestedCheckIn",
			Message: "at least one of requestedCheckIn or requestedCheckOut is required",
		})
	}

	if !validator.IsEmpty(r.RequestedCheckIn) {
		if _, ok := validator.IsValidDateTime(r.RequestedCheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "requestedCheckIn",
				Message: "requestedCheckIn must be an ISO8601 timestamp",
			})
		}
	}

	if !validator.IsEmpty(r.RequestedCheckOut) {
		if _, ok := validator.IsValidDateTime(r.RequestedCheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "requestedCheckOut",
				Message: "requestedCheckOut must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Times parses the optional requested timestamps. Validate must pass first.
func (r *CreateRequestRequest) Times() (checkIn, checkOut *time.Time) {
	if !validator.IsEmpty(r.RequestedCheckIn) {
		if t, ok := validator.IsValidDateTime(r.RequestedCheckIn); ok {
			checkIn = &t
		}
	}
	if !validator.IsEmpty(r.RequestedCheckOut) {
		if t, ok := validator.IsValidDateTime(r.RequestedCheckOut); ok {
			checkOut = &t
		}
	}
	return checkIn, checkOut
}

// ListFilter narrows and paginates the admin adjustment listing.
type ListFilter struct {
	UserID string
	Status *RequestStatus
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
