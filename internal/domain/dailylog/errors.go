package dailylog

import "errors"

var (
	ErrLogNotFound  = errors.New("daily log not found")
	ErrUnauthorized = errors.New("unauthorized to access this daily log")
)
