package org

import (
	"context"
)

type Service interface {
	Create(ctx context.Context, req CreateOrgRequest) (Org, error)
	Get(ctx context.Context, id string) (Org, error)
	GetBySlug(ctx context.Context, slug string) (Org, error)
	List(ctx context.Context, filter ListFilter) ([]Org, int64, error)
	Update(ctx context.Context, req UpdateOrgRequest) (Org, error)
}
