package org

import "context"

// Repository defines data access for org documents. Reads return (nil, nil)
// when the document does not exist.
type Repository interface {
	Create(ctx context.Context, o Org) (Org, error)
	GetByID(ctx context.Context, id string) (*Org, error)
	GetBySlug(ctx context.Context, slug string) (*Org, error)
	List(ctx context.Context, filter ListFilter) ([]Org, int64, error)
	Update(ctx context.Context, o Org) error
}
