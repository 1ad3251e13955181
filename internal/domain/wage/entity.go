package wage

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enum
type TransactionType string

const (
	TxAdvanceGiven    TransactionType = "advance_given"
	TxAdvanceDeducted TransactionType = "advance_deducted"
	TxPayment         TransactionType = "payment"
)

// Transaction is one append-only ledger row. Every transaction carries
// exactly one farm reference, so worker-level deductions spanning farms
// are apportioned into several rows.
type Transaction struct {
	ID        string
	WorkerID  string
	FarmID    string
	Date      time.Time
	Type      TransactionType
	Amount    decimal.Decimal
	Notes     *string
	CreatedAt time.Time
}

// Settlement is a finalized payment for a worker over a period, net of
// advance deduction. Immutable once written.
type Settlement struct {
	ID              string
	WorkerID        string
	FarmID          *string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	DaysWorked      decimal.Decimal
	GrossAmount     decimal.Decimal
	AdvanceDeducted decimal.Decimal
	NetPayment      decimal.Decimal
	Notes           *string
	CreatedAt       time.Time

	// Joined fields
	WorkerName *string
}

// AttendanceDetail is one audit-trail line of a settlement calculation,
// rendered to the operator before confirmation.
type AttendanceDetail struct {
	Date          time.Time
	Status        string
	WorkType      *string
	EffectiveRate decimal.Decimal
	Earnings      decimal.Decimal
}

// Calculation is the pure projection produced by CalculateSettlement.
// It has no identity and no side effects.
type Calculation struct {
	WorkerID    string
	FarmID      *string
	PeriodStart time.Time
	PeriodEnd   time.Time
	DaysWorked  decimal.Decimal
	GrossAmount decimal.Decimal
	Details     []AttendanceDetail
}
