package wage

import (
	"sort"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/attendance"
	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

var (
	fractionFull = decimal.NewFromInt(1)
	fractionHalf = decimal.NewFromFloat(0.5)

	// rateTolerance is how close a derived per-day rate must be to the
	// worker's standing rate before the override is considered redundant
	// and dropped, keeping future rate edits retroactively visible.
	rateTolerance = decimal.NewFromFloat(0.01)
)

// Calculator holds the pure wage arithmetic. It has no state and no side
// effects; everything it needs arrives as arguments.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// DayFraction maps a work status to the portion of a full day's pay it
// earns. Total over the enum: every valid status has a defined fraction
// and absent is exactly zero.
func (c *Calculator) DayFraction(status attendance.WorkStatus) decimal.Decimal {
	switch status {
	case attendance.StatusFullDay:
		return fractionFull
	case attendance.StatusHalfDay:
		return fractionHalf
	default:
		return decimal.Zero
	}
}

// RecordPay computes the payable amount for one attendance record. The
// record's rate override supersedes the worker's standing rate; absent
// records pay exactly zero regardless of any override. A non-positive
// override is rejected rather than silently producing zero pay for a
// worked day.
func (c *Calculator) RecordPay(rec attendance.Record, w worker.Worker) (decimal.Decimal, error) {
	if rec.Status == attendance.StatusAbsent {
		return decimal.Zero, nil
	}

	rate := w.DailyRate
	if rec.DailyRateOverride != nil {
		if !rec.DailyRateOverride.IsPositive() {
			return decimal.Zero, wage.ErrInvalidAmount
		}
		rate = *rec.DailyRateOverride
	}

	return rate.Mul(c.DayFraction(rec.Status)), nil
}

// InferRateOverride derives the per-day rate implied by a total salary
// entered for one record. Returns nil when the derived rate is within
// rateTolerance of the worker's standing rate, so records that did not
// intentionally deviate keep following the standing rate.
func (c *Calculator) InferRateOverride(salary decimal.Decimal, status attendance.WorkStatus, workerRate decimal.Decimal) (*decimal.Decimal, error) {
	if status == attendance.StatusAbsent {
		// Absent always pays zero; a salary input is meaningless here and
		// division by a zero fraction is never attempted.
		return nil, wage.ErrInvalidFraction
	}
	if !salary.IsPositive() {
		return nil, wage.ErrInvalidAmount
	}

	perDay := salary.Div(c.DayFraction(status))
	if !perDay.IsPositive() {
		return nil, wage.ErrInvalidAmount
	}

	if perDay.Sub(workerRate).Abs().LessThanOrEqual(rateTolerance) {
		return nil, nil
	}
	return &perDay, nil
}

// Apportion splits amount into n farm shares that sum back to amount
// exactly at two-decimal precision: every share but the last is the
// amount/n truncated to cents, and the last share absorbs the remainder.
func (c *Calculator) Apportion(amount decimal.Decimal, n int) []decimal.Decimal {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []decimal.Decimal{amount}
	}

	base := amount.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	shares := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		shares[i] = base
	}
	shares[n-1] = amount.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))
	return shares
}

// BuildCalculation projects a set of attendance records into a settlement
// preview: total day fractions, gross pay, and a date-ascending audit
// trail. Records without an override are valued at the worker's current
// rate, also for past dates. Pure; nothing is persisted.
func (c *Calculator) BuildCalculation(w worker.Worker, records []attendance.Record, farmID *string, start, end time.Time) (wage.Calculation, error) {
	calc := wage.Calculation{
		WorkerID:    w.ID,
		FarmID:      farmID,
		PeriodStart: start,
		PeriodEnd:   end,
		DaysWorked:  decimal.Zero,
		GrossAmount: decimal.Zero,
		Details:     make([]wage.AttendanceDetail, 0, len(records)),
	}

	for _, rec := range records {
		if farmID != nil && !containsFarm(rec.FarmIDs, *farmID) {
			continue
		}

		pay, err := c.RecordPay(rec, w)
		if err != nil {
			return wage.Calculation{}, err
		}

		rate := w.DailyRate
		if rec.DailyRateOverride != nil {
			rate = *rec.DailyRateOverride
		}

		calc.DaysWorked = calc.DaysWorked.Add(c.DayFraction(rec.Status))
		calc.GrossAmount = calc.GrossAmount.Add(pay)
		calc.Details = append(calc.Details, wage.AttendanceDetail{
			Date:          rec.Date,
			Status:        string(rec.Status),
			WorkType:      rec.WorkType,
			EffectiveRate: rate,
			Earnings:      pay,
		})
	}

	sort.SliceStable(calc.Details, func(i, j int) bool {
		return calc.Details[i].Date.Before(calc.Details[j].Date)
	})

	return calc, nil
}

// ValidateConfirmation applies the settlement confirmation checks in
// order, each failing with its own error kind.
func (c *Calculator) ValidateConfirmation(totalSalary, deduction, balance decimal.Decimal) error {
	if totalSalary.IsNegative() {
		return wage.ErrInvalidAmount
	}
	if deduction.IsNegative() {
		return wage.ErrInvalidAmount
	}
	if deduction.GreaterThan(balance) {
		return wage.ErrExceedsAdvanceBalance
	}
	if deduction.GreaterThan(totalSalary) {
		return wage.ErrDeductionExceedsGross
	}
	return nil
}

func containsFarm(farmIDs []string, farmID string) bool {
	for _, id := range farmIDs {
		if id == farmID {
			return true
		}
	}
	return false
}
