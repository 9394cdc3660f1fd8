package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrNotRequestOwner         = errors.New("only the requester can cancel a leave request")
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
)
