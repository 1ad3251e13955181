package tempworker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry records one day of casual labor. Temporary workers have no
// persistent identity, no standing rate and no advance balance: the
// amount paid is entered directly by the operator.
type Entry struct {
	ID     string
	Name   string
	FarmID string
	Date   time.Time
	// HoursWorked is informational only. Full-day work conventionally
	// maps to 8 hours and half-day to 4, but nothing enforces that.
	HoursWorked decimal.Decimal
	AmountPaid  decimal.Decimal
	Notes       *string
	CreatedAt   time.Time
}
