package winery

import (
	"context"
	"time"
)

type LotRepository interface {
	Create(ctx context.Context, lot WineLot) (WineLot, error)
	GetByID(ctx context.Context, id string) (WineLot, error)
	List(ctx context.Context, status *string) ([]WineLot, error)
	Update(ctx context.Context, req UpdateLotRequest) error

	// ListOverdueReadings returns fermenting lots whose latest reading is
	// older than cutoff (or that have no readings at all).
	ListOverdueReadings(ctx context.Context, cutoff time.Time) ([]WineLot, error)
}

type ReadingRepository interface {
	Create(ctx context.Context, reading FermentationReading) (FermentationReading, error)
	ListByLot(ctx context.Context, lotID string) ([]FermentationReading, error)
}
