package farm

import (
	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
)

type CreateFarmRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
}

func (r *CreateFarmRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFarmRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type FarmResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	IsActive bool    `json:"is_active"`
}
