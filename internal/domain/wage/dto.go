package wage

import (
	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateSettlementRequest struct {
	WorkerID  string  `json:"worker_id"`
	FarmID    *string `json:"farm_id,omitempty"` // nil means all farms
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

func (r *CalculateSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ConfirmSettlementRequest finalizes a previously calculated settlement.
// TotalSalary is pre-filled from the calculation's gross amount but the
// operator may override it. Confirmation is not idempotent; callers must
// guarantee at-most-once submission.
type ConfirmSettlementRequest struct {
	WorkerID         string          `json:"worker_id"`
	FarmIDs          []string        `json:"farm_ids"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	DaysWorked       decimal.Decimal `json:"days_worked"`
	TotalSalary      decimal.Decimal `json:"total_salary"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
	Notes            *string         `json:"notes,omitempty"`
}

func (r *ConfirmSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if len(r.FarmIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "farm_ids", Message: "at least one farm is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceRequest struct {
	WorkerID string          `json:"worker_id"`
	FarmID   string          `json:"farm_id"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    *string         `json:"notes,omitempty"`
}

func (r *AdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if validator.IsEmpty(r.FarmID) {
		errs = append(errs, validator.ValidationError{Field: "farm_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceDetailResponse struct {
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	WorkType      *string         `json:"work_type,omitempty"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	Earnings      decimal.Decimal `json:"earnings"`
}

type CalculationResponse struct {
	WorkerID          string                     `json:"worker_id"`
	WorkerName        string                     `json:"worker_name"`
	FarmID            *string                    `json:"farm_id,omitempty"`
	PeriodStart       string                     `json:"period_start"`
	PeriodEnd         string                     `json:"period_end"`
	DaysWorked        decimal.Decimal            `json:"days_worked"`
	GrossAmount       decimal.Decimal            `json:"gross_amount"`
	AdvanceBalance    decimal.Decimal            `json:"advance_balance"`
	AttendanceDetails []AttendanceDetailResponse `json:"attendance_details"`
}

type SettlementResponse struct {
	ID              string          `json:"id"`
	WorkerID        string          `json:"worker_id"`
	WorkerName      *string         `json:"worker_name,omitempty"`
	FarmID          *string         `json:"farm_id,omitempty"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	DaysWorked      decimal.Decimal `json:"days_worked"`
	GrossAmount     decimal.Decimal `json:"gross_amount"`
	AdvanceDeducted decimal.Decimal `json:"advance_deducted"`
	NetPayment      decimal.Decimal `json:"net_payment"`
	Notes           *string         `json:"notes,omitempty"`
}

type TransactionResponse struct {
	ID       string          `json:"id"`
	WorkerID string          `json:"worker_id"`
	FarmID   string          `json:"farm_id"`
	Date     string          `json:"date"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    *string         `json:"notes,omitempty"`
}

type AdvanceResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	NewBalance  decimal.Decimal     `json:"new_balance"`
}

type TransactionFilter struct {
	WorkerID  *string
	FarmID    *string
	Type      *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

type SettlementFilter struct {
	WorkerID  *string
	FarmID    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}
