package org

import "errors"

var (
	ErrOrgNotFound  = errors.New("org not found")
	ErrSlugExists   = errors.New("org slug already taken")
	ErrOrgInactive  = errors.New("org is deactivated")
	ErrNotOrgMember = errors.New("user does not belong to this org")
)
