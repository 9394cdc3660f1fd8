package badge

import "context"

// Repository defines read access to the badge catalog.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Badge, error)
	List(ctx context.Context, filter ListFilter) ([]Badge, int64, error)
}

// ListFilter narrows and paginates the badge catalog.
type ListFilter struct {
	Category string
	Search   string
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
