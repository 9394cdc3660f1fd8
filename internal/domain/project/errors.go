package project

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTicketWrongProject  = errors.New("ticket does not belong to this project")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
)
