package tempworker

import (
	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	Name        string          `json:"name"`
	FarmID      string          `json:"farm_id"`
	Date        string          `json:"date"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.FarmID) {
		errs = append(errs, validator.ValidationError{Field: "farm_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if !r.AmountPaid.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount_paid", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryFilter struct {
	FarmID    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

type EntryResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	FarmID      string          `json:"farm_id"`
	Date        string          `json:"date"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Notes       *string         `json:"notes,omitempty"`
}
