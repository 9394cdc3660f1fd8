package org

import (
	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
)

type CreateOrgRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	OwnerID string `json:"-"`
}

func (r *CreateOrgRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if !validator.IsValidSlug(r.Slug) {
		errs = append(errs, validator.ValidationError{
			Field:   "slug",
			Message: "slug must be 3-50 lowercase letters, digits or dashes",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateOrgRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (r *UpdateOrgRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter paginates org listings.
type ListFilter struct {
	Search string
	Page   int
	Limit  int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}
