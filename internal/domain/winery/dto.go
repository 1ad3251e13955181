package winery

import (
	"time"

	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLotRequest struct {
	Name         string          `json:"name"`
	Varietal     string          `json:"varietal"`
	Vintage      int             `json:"vintage"`
	Tank         *string         `json:"tank,omitempty"`
	VolumeLiters decimal.Decimal `json:"volume_liters"`
	Notes        *string         `json:"notes,omitempty"`
}

func (r *CreateLotRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Varietal) {
		errs = append(errs, validator.ValidationError{Field: "varietal", Message: "is required"})
	}
	if r.Vintage < 1900 || r.Vintage > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{Field: "vintage", Message: "is out of range"})
	}
	if !r.VolumeLiters.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "volume_liters", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLotRequest struct {
	ID           string
	Name         *string          `json:"name,omitempty"`
	Tank         *string          `json:"tank,omitempty"`
	VolumeLiters *decimal.Decimal `json:"volume_liters,omitempty"`
	Status       *string          `json:"status,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

func (r *UpdateLotRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidLotStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'fermenting', 'aging', 'bottled' or 'sold'"})
	}
	if r.VolumeLiters != nil && !r.VolumeLiters.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "volume_liters", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateReadingRequest struct {
	LotID       string           `json:"-"`
	ReadingDate string           `json:"reading_date"`
	Brix        decimal.Decimal  `json:"brix"`
	Temperature decimal.Decimal  `json:"temperature"`
	PH          *decimal.Decimal `json:"ph,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

func (r *CreateReadingRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.ReadingDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "reading_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Brix.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "brix", Message: "must be non-negative"})
	}
	if r.PH != nil && (r.PH.IsNegative() || r.PH.GreaterThan(decimal.NewFromInt(14))) {
		errs = append(errs, validator.ValidationError{Field: "ph", Message: "must be between 0 and 14"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LotResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Varietal     string          `json:"varietal"`
	Vintage      int             `json:"vintage"`
	Tank         *string         `json:"tank,omitempty"`
	VolumeLiters decimal.Decimal `json:"volume_liters"`
	Status       string          `json:"status"`
	Notes        *string         `json:"notes,omitempty"`
}

type ReadingResponse struct {
	ID          string           `json:"id"`
	LotID       string           `json:"lot_id"`
	ReadingDate string           `json:"reading_date"`
	Brix        decimal.Decimal  `json:"brix"`
	Temperature decimal.Decimal  `json:"temperature"`
	PH          *decimal.Decimal `json:"ph,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}
