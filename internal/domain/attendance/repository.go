package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// ListByWorkerAndRange returns the worker's records with date in
	// [start, end] inclusive, optionally restricted to one farm,
	// ordered by date ascending.
	ListByWorkerAndRange(ctx context.Context, workerID string, farmID *string, start, end time.Time) ([]Record, error)

	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
	Delete(ctx context.Context, id string) error
}
