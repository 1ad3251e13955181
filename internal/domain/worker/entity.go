package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Worker struct {
	ID       string
	FullName string
	// DailyRate is the worker's standing rate for one full day of work.
	// Attendance records may carry a per-record override.
	DailyRate decimal.Decimal
	// AdvanceBalance is the outstanding cash advance still to be recovered.
	// It is never set directly: it only moves through advance-given,
	// advance-deducted and settlement operations.
	AdvanceBalance decimal.Decimal
	IsActive       bool
	Phone          *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
