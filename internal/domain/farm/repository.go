package farm

import "context"

type FarmRepository interface {
	Create(ctx context.Context, f Farm) (Farm, error)
	GetByID(ctx context.Context, id string) (Farm, error)
	List(ctx context.Context, activeOnly bool) ([]Farm, error)
	Update(ctx context.Context, req UpdateFarmRequest) error

	// ExistAll reports whether every id references an existing farm.
	ExistAll(ctx context.Context, ids []string) (bool, error)
}
