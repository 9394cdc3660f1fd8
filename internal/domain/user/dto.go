package user

import (
	"time"

	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	OrgID       string `json:"-"`
	CreatedBy   string `json:"-"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
		})
	}

	if validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "displayName",
			Message: "displayName is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID          string  `json:"-"`
	OrgID       string  `json:"-"`
	DisplayName *string `json:"displayName,omitempty"`
	Role        *string `json:"role,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DisplayName != nil && validator.IsEmpty(*r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "displayName",
			Message: "displayName must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows and paginates user listings.
type ListFilter struct {
	Search   string
	Role     *Role
	IsActive *bool
	Page     int
	Limit    int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

// Response is the wire shape of a user: the stored document minus the
// password hash.
type Response struct {
	ID          string      `json:"id"`
	OrgID       string      `json:"orgId"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName"`
	Role        Role        `json:"role"`
	IsActive    bool        `json:"isActive"`
	LeaveQuotas LeaveQuotas `json:"leaveQuotas"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func ToResponse(u User) Response {
	return Response{
		ID:          u.ID,
		OrgID:       u.OrgID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LeaveQuotas: u.LeaveQuotas,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToResponses(users []User) []Response {
	responses := make([]Response, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToResponse(u))
	}
	return responses
}
