package worklog

import (
	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	FarmID      string  `json:"farm_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	WorkerID    *string `json:"worker_id,omitempty"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FarmID) {
		errs = append(errs, validator.ValidationError{Field: "farm_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOrderRequest struct {
	ID          string
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	WorkerID    *string `json:"worker_id,omitempty"`
}

func (r *UpdateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidOrderStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'open', 'in_progress' or 'done'"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateActivityRequest struct {
	FarmID      string           `json:"farm_id"`
	Date        string           `json:"date"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
}

func (r *CreateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FarmID) {
		errs = append(errs, validator.ValidationError{Field: "farm_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if r.Hours != nil && r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrderResponse struct {
	ID          string  `json:"id"`
	FarmID      string  `json:"farm_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date,omitempty"`
	WorkerID    *string `json:"worker_id,omitempty"`
}

type ActivityResponse struct {
	ID          string           `json:"id"`
	FarmID      string           `json:"farm_id"`
	Date        string           `json:"date"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
}

type ActivityFilter struct {
	FarmID    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}
