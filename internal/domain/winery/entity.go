package winery

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotStatus enum
type LotStatus string

const (
	LotStatusFermenting LotStatus = "fermenting"
	LotStatusAging      LotStatus = "aging"
	LotStatusBottled    LotStatus = "bottled"
	LotStatusSold       LotStatus = "sold"
)

var ValidLotStatuses = []string{
	string(LotStatusFermenting), string(LotStatusAging),
	string(LotStatusBottled), string(LotStatusSold),
}

type WineLot struct {
	ID           string
	Name         string
	Varietal     string
	Vintage      int
	Tank         *string
	VolumeLiters decimal.Decimal
	Status       LotStatus
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FermentationReading is one daily lab measurement for a lot. Brix is
// expected to fall over a fermentation; the engine does not enforce that,
// it only records what the operator measured.
type FermentationReading struct {
	ID          string
	LotID       string
	ReadingDate time.Time
	Brix        decimal.Decimal
	Temperature decimal.Decimal
	PH          *decimal.Decimal
	Notes       *string
	CreatedAt   time.Time
}
