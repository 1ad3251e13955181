package worker

import (
	"context"

	"github.com/shopspring/decimal"
)

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context, activeOnly bool) ([]Worker, error)
	Update(ctx context.Context, req UpdateWorkerRequest) error

	// AdjustAdvanceBalance applies delta to the worker's advance balance
	// in one conditional UPDATE: the row is only touched when the
	// resulting balance would be non-negative. Returns the new balance,
	// or ErrStaleBalance when the condition did not hold. Callers run
	// this inside database.WithTransaction together with the matching
	// ledger append.
	AdjustAdvanceBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
}
