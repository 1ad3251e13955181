package worklog

import "errors"

var (
	ErrOrderNotFound    = errors.New("work order not found")
	ErrActivityNotFound = errors.New("activity log entry not found")
)
