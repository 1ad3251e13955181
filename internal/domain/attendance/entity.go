package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkStatus is a closed enum. The form-level "not_set" value used by
// some clients is rejected at the DTO boundary and never reaches pay
// computation.
type WorkStatus string

const (
	StatusFullDay WorkStatus = "full_day"
	StatusHalfDay WorkStatus = "half_day"
	StatusAbsent  WorkStatus = "absent"
)

// ValidStatuses lists every accepted work status value.
var ValidStatuses = []string{string(StatusFullDay), string(StatusHalfDay), string(StatusAbsent)}

type Record struct {
	ID       string
	WorkerID string
	// FarmIDs holds every farm the day's work is attributable to. The
	// record is stored once with the full farm set; monetary splits per
	// farm happen in the wage engine.
	FarmIDs []string
	Date    time.Time
	Status  WorkStatus
	// DailyRateOverride supersedes the worker's standing rate for this
	// record only. Nil means the worker's current rate governs, also
	// retroactively when the rate is later edited.
	DailyRateOverride *decimal.Decimal
	WorkType          *string
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	WorkerName      *string
	WorkerDailyRate *decimal.Decimal
}
