package worklog

import (
	"context"
	"time"
)

type OrderRepository interface {
	Create(ctx context.Context, o WorkOrder) (WorkOrder, error)
	GetByID(ctx context.Context, id string) (WorkOrder, error)
	List(ctx context.Context, farmID *string, status *string) ([]WorkOrder, error)
	Update(ctx context.Context, req UpdateOrderRequest) error

	// ListOverdue returns orders still open or in progress whose due date
	// is before now.
	ListOverdue(ctx context.Context, now time.Time) ([]WorkOrder, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, a ActivityLog) (ActivityLog, error)
	List(ctx context.Context, filter ActivityFilter) ([]ActivityLog, int64, error)
	Delete(ctx context.Context, id string) error
}
