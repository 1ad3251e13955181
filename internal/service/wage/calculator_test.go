package wage

import (
	"testing"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/attendance"
	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testWorker(rate, balance string) worker.Worker {
	return worker.Worker{
		ID:             "w-1",
		FullName:       "Mario Rossi",
		DailyRate:      dec(rate),
		AdvanceBalance: dec(balance),
		IsActive:       true,
	}
}

func TestDayFraction_Totality(t *testing.T) {
	c := NewCalculator()

	cases := []struct {
		status attendance.WorkStatus
		want   string
	}{
		{attendance.StatusFullDay, "1"},
		{attendance.StatusHalfDay, "0.5"},
		{attendance.StatusAbsent, "0"},
	}
	for _, tc := range cases {
		got := c.DayFraction(tc.status)
		assert.True(t, got.Equal(dec(tc.want)), "DayFraction(%s) = %s, want %s", tc.status, got, tc.want)
		assert.False(t, got.IsNegative())
	}
}

func TestRecordPay_UsesWorkerRateWithoutOverride(t *testing.T) {
	c := NewCalculator()
	w := testWorker("300", "0")

	pay, err := c.RecordPay(attendance.Record{Status: attendance.StatusFullDay}, w)
	require.NoError(t, err)
	assert.True(t, pay.Equal(dec("300")))

	pay, err = c.RecordPay(attendance.Record{Status: attendance.StatusHalfDay}, w)
	require.NoError(t, err)
	assert.True(t, pay.Equal(dec("150")))
}

func TestRecordPay_OverrideSupersedesRate(t *testing.T) {
	c := NewCalculator()
	w := testWorker("300", "0")
	override := dec("400")

	pay, err := c.RecordPay(attendance.Record{Status: attendance.StatusHalfDay, DailyRateOverride: &override}, w)
	require.NoError(t, err)
	assert.True(t, pay.Equal(dec("200")))
}

func TestRecordPay_AbsentPaysZeroRegardlessOfOverride(t *testing.T) {
	c := NewCalculator()
	w := testWorker("300", "0")
	override := dec("9999")

	pay, err := c.RecordPay(attendance.Record{Status: attendance.StatusAbsent, DailyRateOverride: &override}, w)
	require.NoError(t, err)
	assert.True(t, pay.IsZero())
}

func TestRecordPay_RejectsNonPositiveOverride(t *testing.T) {
	c := NewCalculator()
	w := testWorker("300", "0")

	for _, bad := range []string{"0", "-50"} {
		override := dec(bad)
		_, err := c.RecordPay(attendance.Record{Status: attendance.StatusFullDay, DailyRateOverride: &override}, w)
		assert.ErrorIs(t, err, wage.ErrInvalidAmount, "override %s", bad)
	}
}

func TestInferRateOverride_RoundTrip(t *testing.T) {
	c := NewCalculator()
	rate := dec("312.50")

	for _, status := range []attendance.WorkStatus{attendance.StatusFullDay, attendance.StatusHalfDay} {
		salary := rate.Mul(c.DayFraction(status))
		derived, err := c.InferRateOverride(salary, status, dec("100"))
		require.NoError(t, err)
		require.NotNil(t, derived)

		// Re-deriving the salary from the inferred rate reproduces the
		// original to currency precision.
		back := derived.Mul(c.DayFraction(status))
		assert.True(t, back.Sub(salary).Abs().LessThanOrEqual(dec("0.01")),
			"status %s: %s -> %s -> %s", status, salary, derived, back)
	}
}

func TestInferRateOverride_OmitsRedundantOverride(t *testing.T) {
	c := NewCalculator()

	// Entered salary matches the standing rate exactly.
	derived, err := c.InferRateOverride(dec("150"), attendance.StatusHalfDay, dec("300"))
	require.NoError(t, err)
	assert.Nil(t, derived)

	// Within the 0.01 tolerance.
	derived, err = c.InferRateOverride(dec("300.005"), attendance.StatusFullDay, dec("300"))
	require.NoError(t, err)
	assert.Nil(t, derived)

	// Outside the tolerance the override is kept.
	derived, err = c.InferRateOverride(dec("320"), attendance.StatusFullDay, dec("300"))
	require.NoError(t, err)
	require.NotNil(t, derived)
	assert.True(t, derived.Equal(dec("320")))
}

func TestInferRateOverride_AbsentFailsInvalidFraction(t *testing.T) {
	c := NewCalculator()

	_, err := c.InferRateOverride(dec("100"), attendance.StatusAbsent, dec("300"))
	assert.ErrorIs(t, err, wage.ErrInvalidFraction)
}

func TestInferRateOverride_RejectsNonPositiveSalary(t *testing.T) {
	c := NewCalculator()

	for _, bad := range []string{"0", "-100"} {
		_, err := c.InferRateOverride(dec(bad), attendance.StatusFullDay, dec("300"))
		assert.ErrorIs(t, err, wage.ErrInvalidAmount, "salary %s", bad)
	}
}

func TestApportion_ConservationForAllFarmCounts(t *testing.T) {
	c := NewCalculator()

	amounts := []string{"100", "0.01", "1", "33.33", "999.99", "1234.56", "0.05"}
	for _, a := range amounts {
		amount := dec(a)
		for n := 1; n <= 20; n++ {
			shares := c.Apportion(amount, n)
			require.Len(t, shares, n)

			sum := decimal.Zero
			for _, share := range shares {
				assert.False(t, share.IsNegative(), "amount %s n %d: negative share %s", a, n, share)
				sum = sum.Add(share)
			}
			assert.True(t, sum.Equal(amount), "amount %s n %d: shares sum to %s", a, n, sum)
		}
	}
}

func TestApportion_HundredAcrossThreeFarms(t *testing.T) {
	c := NewCalculator()

	shares := c.Apportion(dec("100"), 3)
	require.Len(t, shares, 3)
	assert.True(t, shares[0].Equal(dec("33.33")))
	assert.True(t, shares[1].Equal(dec("33.33")))
	assert.True(t, shares[2].Equal(dec("33.34")))
}

func TestApportion_SingleFarmPassesThrough(t *testing.T) {
	c := NewCalculator()

	shares := c.Apportion(dec("250.75"), 1)
	require.Len(t, shares, 1)
	assert.True(t, shares[0].Equal(dec("250.75")))
}

func TestValidateConfirmation_RejectionOrdering(t *testing.T) {
	c := NewCalculator()

	cases := []struct {
		name        string
		totalSalary string
		deduction   string
		balance     string
		want        error
	}{
		{"negative salary", "-1", "0", "1000", wage.ErrInvalidAmount},
		{"negative deduction", "450", "-1", "1000", wage.ErrInvalidAmount},
		{"deduction above balance", "450", "1200", "1000", wage.ErrExceedsAdvanceBalance},
		{"deduction above gross", "450", "500", "1000", wage.ErrDeductionExceedsGross},
		{"valid", "450", "200", "1000", nil},
		{"deduction equals gross and balance", "450", "450", "450", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.ValidateConfirmation(dec(tc.totalSalary), dec(tc.deduction), dec(tc.balance))
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestBuildCalculation_EndToEndScenario(t *testing.T) {
	c := NewCalculator()
	w := testWorker("300", "1000")

	records := []attendance.Record{
		{WorkerID: w.ID, FarmIDs: []string{"f-1"}, Date: day("2024-06-03"), Status: attendance.StatusFullDay},
		{WorkerID: w.ID, FarmIDs: []string{"f-1"}, Date: day("2024-06-04"), Status: attendance.StatusHalfDay},
		{WorkerID: w.ID, FarmIDs: []string{"f-1"}, Date: day("2024-06-05"), Status: attendance.StatusAbsent},
	}

	calc, err := c.BuildCalculation(w, records, nil, day("2024-06-03"), day("2024-06-05"))
	require.NoError(t, err)

	assert.True(t, calc.DaysWorked.Equal(dec("1.5")), "daysWorked = %s", calc.DaysWorked)
	assert.True(t, calc.GrossAmount.Equal(dec("450")), "gross = %s", calc.GrossAmount)
	require.Len(t, calc.Details, 3)

	// Audit trail is date-ascending with the absent day contributing zero.
	assert.Equal(t, day("2024-06-03"), calc.Details[0].Date)
	assert.Equal(t, day("2024-06-04"), calc.Details[1].Date)
	assert.Equal(t, day("2024-06-05"), calc.Details[2].Date)
	assert.True(t, calc.Details[0].Earnings.Equal(dec("300")))
	assert.True(t, calc.Details[1].Earnings.Equal(dec("150")))
	assert.True(t, calc.Details[2].Earnings.IsZero())

	// Confirmation arithmetic for the same scenario.
	require.NoError(t, c.ValidateConfirmation(calc.GrossAmount, dec("200"), w.AdvanceBalance))
	net := calc.GrossAmount.Sub(dec("200"))
	assert.True(t, net.Equal(dec("250")))
	assert.True(t, w.AdvanceBalance.Sub(dec("200")).Equal(dec("800")))
}

func TestBuildCalculation_FarmFilter(t *testing.T) {
	c := NewCalculator()
	w := testWorker("200", "0")

	records := []attendance.Record{
		{WorkerID: w.ID, FarmIDs: []string{"f-1", "f-2"}, Date: day("2024-06-03"), Status: attendance.StatusFullDay},
		{WorkerID: w.ID, FarmIDs: []string{"f-2"}, Date: day("2024-06-04"), Status: attendance.StatusFullDay},
		{WorkerID: w.ID, FarmIDs: []string{"f-3"}, Date: day("2024-06-05"), Status: attendance.StatusFullDay},
	}

	farmID := "f-2"
	calc, err := c.BuildCalculation(w, records, &farmID, day("2024-06-03"), day("2024-06-05"))
	require.NoError(t, err)

	assert.True(t, calc.DaysWorked.Equal(dec("2")))
	assert.True(t, calc.GrossAmount.Equal(dec("400")))
	assert.Len(t, calc.Details, 2)
}

func TestBuildCalculation_PayNonNegativityOverGrid(t *testing.T) {
	c := NewCalculator()
	w := testWorker("275.50", "0")
	override := dec("130.25")

	statuses := []attendance.WorkStatus{attendance.StatusFullDay, attendance.StatusHalfDay, attendance.StatusAbsent}
	overrides := []*decimal.Decimal{nil, &override}

	for _, status := range statuses {
		for _, ov := range overrides {
			pay, err := c.RecordPay(attendance.Record{Status: status, DailyRateOverride: ov}, w)
			require.NoError(t, err)
			assert.False(t, pay.IsNegative(), "status %s", status)
			if status == attendance.StatusAbsent {
				assert.True(t, pay.IsZero())
			}
		}
	}
}

func TestBuildCalculation_CurrentRateFallbackIsRetroactive(t *testing.T) {
	c := NewCalculator()
	records := []attendance.Record{
		{FarmIDs: []string{"f-1"}, Date: day("2024-01-10"), Status: attendance.StatusFullDay},
	}

	// Same historical record valued at two different standing rates: the
	// record without an override follows the worker's current rate.
	before, err := c.BuildCalculation(testWorker("300", "0"), records, nil, day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)
	after, err := c.BuildCalculation(testWorker("350", "0"), records, nil, day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)

	assert.True(t, before.GrossAmount.Equal(dec("300")))
	assert.True(t, after.GrossAmount.Equal(dec("350")))
}
