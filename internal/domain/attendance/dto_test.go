package attendance

import (
	"testing"

	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

func validCreateRequest() CreateRecordRequest {
	return CreateRecordRequest{
		WorkerID: "w-1",
		FarmIDs:  []string{"f-1"},
		Date:     "2025-06-02",
		Status:   "full_day",
	}
}

func TestCreateRecordRequest_Validate(t *testing.T) {
	override := decimal.RequireFromString("350")
	zero := decimal.Zero
	salary := decimal.RequireFromString("150")

	tests := []struct {
		name      string
		mutate    func(*CreateRecordRequest)
		wantField string
	}{
		{
			name:   "valid",
			mutate: func(r *CreateRecordRequest) {},
		},
		{
			name:   "valid with half day",
			mutate: func(r *CreateRecordRequest) { r.Status = "half_day" },
		},
		{
			name:      "missing worker",
			mutate:    func(r *CreateRecordRequest) { r.WorkerID = "" },
			wantField: "worker_id",
		},
		{
			name:      "no farms",
			mutate:    func(r *CreateRecordRequest) { r.FarmIDs = nil },
			wantField: "farm_ids",
		},
		{
			name:      "bad date",
			mutate:    func(r *CreateRecordRequest) { r.Date = "02-06-2025" },
			wantField: "date",
		},
		{
			name:      "not_set status rejected",
			mutate:    func(r *CreateRecordRequest) { r.Status = "not_set" },
			wantField: "work_status",
		},
		{
			name: "both rate inputs rejected",
			mutate: func(r *CreateRecordRequest) {
				r.DailyRateOverride = &override
				r.EnteredSalary = &salary
			},
			wantField: "entered_salary",
		},
		{
			name:      "zero override rejected",
			mutate:    func(r *CreateRecordRequest) { r.DailyRateOverride = &zero },
			wantField: "daily_rate_override",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			errs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("Validate() = %v, want ValidationErrors", err)
			}
			if _, found := errs.ToMap()[tt.wantField]; !found {
				t.Errorf("Validate() missing error for field %q, got %v", tt.wantField, errs.ToMap())
			}
		})
	}
}
