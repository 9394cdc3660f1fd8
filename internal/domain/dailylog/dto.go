package dailylog

import (
	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
)

type AddManualTaskRequest struct {
	UserID string `json:"-"`
	OrgID  string `json:"-"`
	Date   string `json:"date"`
	Task   string `json:"task"`
}

func (r *AddManualTaskRequest) Validate() error {
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

	if validator.IsEmpty(r.Task) {
		errs = append(errs, validator.ValidationError{
			Field:   "task",
			Message: "task is required",
		})
	}
	if len(r.Task) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "task",
			Message: "task must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
