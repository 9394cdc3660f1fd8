package badge

import "errors"

var (
	ErrBadgeNotFound = errors.New("badge not found")
)
