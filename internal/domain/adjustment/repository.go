package adjustment

import "context"

// Repository defines data access for adjustment request documents. Reads
// return (nil, nil) when the document does not exist.
type Repository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string, orgID string) (*Request, error)
	Update(ctx context.Context, request Request) error
	ListByUser(ctx context.Context, userID string, orgID string) ([]Request, error)
	List(ctx context.Context, filter ListFilter, orgID string) ([]Request, int64, error)
}
