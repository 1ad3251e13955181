package worker

import (
	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	FullName  string          `json:"full_name"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Phone     *string         `json:"phone,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !r.DailyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateWorkerRequest deliberately has no advance_balance field; the
// balance moves only through advance and settlement operations.
type UpdateWorkerRequest struct {
	ID        string
	FullName  *string          `json:"full_name,omitempty"`
	DailyRate *decimal.Decimal `json:"daily_rate,omitempty"`
	Phone     *string          `json:"phone,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.DailyRate != nil && !r.DailyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	DailyRate      decimal.Decimal `json:"daily_rate"`
	AdvanceBalance decimal.Decimal `json:"advance_balance"`
	IsActive       bool            `json:"is_active"`
	Phone          *string         `json:"phone,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
}
