package response

import (
	"errors"
	"net/http"

	"github.com/agrovin/farmops-backend-go/internal/domain/attendance"
	"github.com/agrovin/farmops-backend-go/internal/domain/farm"
	"github.com/agrovin/farmops-backend-go/internal/domain/tempworker"
	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/domain/winery"
	"github.com/agrovin/farmops-backend-go/internal/domain/worker"
	"github.com/agrovin/farmops-backend-go/internal/domain/worklog"
	"github.com/agrovin/farmops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Farm and worker lookups
	case errors.Is(err, farm.ErrFarmNotFound):
		NotFound(w, "Farm not found")
	case errors.Is(err, farm.ErrFarmNameExists):
		Conflict(w, "Farm name already exists")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Attendance
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateEntry):
		Conflict(w, "Attendance already recorded for this worker and date")

	// Wage engine
	case errors.Is(err, wage.ErrInvalidAmount):
		BadRequest(w, "Amount must be positive", nil)
	case errors.Is(err, wage.ErrInvalidFraction):
		BadRequest(w, "A salary cannot be entered for an absent day", nil)
	case errors.Is(err, wage.ErrExceedsAdvanceBalance):
		Conflict(w, "Deduction exceeds the worker's advance balance")
	case errors.Is(err, wage.ErrDeductionExceedsGross):
		BadRequest(w, "Deduction exceeds the gross settlement amount", nil)
	case errors.Is(err, wage.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, wage.ErrOptimisticConflict):
		Conflict(w, "The worker's balance changed concurrently, please retry")

	// Temporary workers
	case errors.Is(err, tempworker.ErrEntryNotFound):
		NotFound(w, "Temporary worker entry not found")

	// Winery
	case errors.Is(err, winery.ErrLotNotFound):
		NotFound(w, "Wine lot not found")
	case errors.Is(err, winery.ErrReadingNotFound):
		NotFound(w, "Fermentation reading not found")
	case errors.Is(err, winery.ErrLotNotActive):
		Conflict(w, "Readings are only accepted for fermenting or aging lots")

	// Work log
	case errors.Is(err, worklog.ErrOrderNotFound):
		NotFound(w, "Work order not found")
	case errors.Is(err, worklog.ErrActivityNotFound):
		NotFound(w, "Activity log entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
