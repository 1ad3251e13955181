package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	// ErrStaleBalance means a conditional balance update matched no row:
	// either another writer changed the balance first, or the balance is
	// insufficient for the requested adjustment.
	ErrStaleBalance = errors.New("advance balance changed concurrently or is insufficient")
)
