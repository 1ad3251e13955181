package attendance

import (
	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest records one worker-day. The pay input is
// bidirectional: the caller sends either daily_rate_override (a rate) or
// entered_salary (a total for the day, from which the engine derives the
// implied rate). Sending both is rejected.
type CreateRecordRequest struct {
	WorkerID          string           `json:"worker_id"`
	FarmIDs           []string         `json:"farm_ids"`
	Date              string           `json:"date"`
	Status            string           `json:"work_status"`
	DailyRateOverride *decimal.Decimal `json:"daily_rate_override,omitempty"`
	EnteredSalary     *decimal.Decimal `json:"entered_salary,omitempty"`
	WorkType          *string          `json:"work_type,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	// AdvanceDeduction optionally recovers part of an outstanding advance
	// at entry time, apportioned across the selected farms.
	AdvanceDeduction *decimal.Decimal `json:"advance_deduction,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if len(r.FarmIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "farm_ids", Message: "at least one farm is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{Field: "work_status", Message: "must be 'full_day', 'half_day' or 'absent'"})
	}
	if r.DailyRateOverride != nil && r.EnteredSalary != nil {
		errs = append(errs, validator.ValidationError{Field: "entered_salary", Message: "cannot be combined with daily_rate_override"})
	}
	if r.DailyRateOverride != nil && !r.DailyRateOverride.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate_override", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordFilter struct {
	WorkerID  *string
	FarmID    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

type RecordResponse struct {
	ID                string           `json:"id"`
	WorkerID          string           `json:"worker_id"`
	WorkerName        *string          `json:"worker_name,omitempty"`
	FarmIDs           []string         `json:"farm_ids"`
	Date              string           `json:"date"`
	Status            string           `json:"work_status"`
	DailyRateOverride *decimal.Decimal `json:"daily_rate_override,omitempty"`
	EffectiveRate     decimal.Decimal  `json:"effective_rate"`
	Pay               decimal.Decimal  `json:"pay"`
	WorkType          *string          `json:"work_type,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
