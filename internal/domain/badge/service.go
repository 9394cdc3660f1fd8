package badge

import (
	"context"
)

type Service interface {
	Get(ctx context.Context, id string) (Badge, error)
	List(ctx context.Context, filter ListFilter) ([]Badge, int64, error)
}
