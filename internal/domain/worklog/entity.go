package worklog

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enum
type OrderStatus string

const (
	OrderStatusOpen       OrderStatus = "open"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
)

var ValidOrderStatuses = []string{
	string(OrderStatusOpen), string(OrderStatusInProgress), string(OrderStatusDone),
}

type WorkOrder struct {
	ID          string
	FarmID      string
	Title       string
	Description *string
	Status      OrderStatus
	DueDate     *time.Time
	WorkerID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivityLog is one line of the daily farm diary.
type ActivityLog struct {
	ID          string
	FarmID      string
	Date        time.Time
	Category    string
	Description string
	Hours       *decimal.Decimal
	CreatedAt   time.Time
}
