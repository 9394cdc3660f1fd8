package adjustment

import "errors"

var (
	ErrRequestNotFound         = errors.New("adjustment request not found")
	ErrRequestAlreadyProcessed = errors.New("adjustment request already processed")
	ErrNotRequestOwner         = errors.New("only the requester can cancel an adjustment request")
	ErrNothingToAdjust         = errors.New("at least one of requestedCheckIn or requestedCheckOut is required")
)
