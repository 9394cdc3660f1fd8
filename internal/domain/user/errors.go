package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered in this org")
	ErrUserInactive           = errors.New("user account is deactivated")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrOrgIDRequired          = errors.New("org id is required")
	ErrUnknownLeaveKind       = errors.New("unknown leave kind")
)
