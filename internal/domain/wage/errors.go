package wage

import "errors"

// Business-rule failures. Every engine operation either returns a result
// or fails with exactly one of these; invalid values are rejected, never
// clamped to a default.
var (
	ErrInvalidAmount         = errors.New("amount must be a positive number")
	ErrInvalidFraction       = errors.New("work status defines no positive day fraction")
	ErrExceedsAdvanceBalance = errors.New("deduction exceeds the worker's advance balance")
	ErrDeductionExceedsGross = errors.New("deduction exceeds the gross payment")
	ErrSettlementNotFound    = errors.New("settlement not found")
	// ErrOptimisticConflict is raised when a balance-conditional update
	// still fails after one retry with a fresh balance read.
	ErrOptimisticConflict = errors.New("advance balance changed concurrently, please retry")
)
