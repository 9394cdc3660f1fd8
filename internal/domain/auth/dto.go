package auth

import (
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
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

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	OrgName     string `json:"orgName"`
	OrgSlug     string `json:"orgSlug"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
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

	if validator.IsEmpty(r.OrgName) {
		errs = append(errs, validator.ValidationError{
			Field:   "orgName",
			Message: "orgName is required",
		})
	}

	if !validator.IsValidSlug(r.OrgSlug) {
		errs = append(errs, validator.ValidationError{
			Field:   "orgSlug",
			Message: "orgSlug must be 3-50 lowercase letters, digits or dashes",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   int64         `json:"expiresAt"`
	User        user.Response `json:"user"`
}
