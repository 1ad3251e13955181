package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrDuplicateEntry = errors.New("attendance already recorded for this worker and date")
)
