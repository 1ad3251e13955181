package wage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/attendance"
	"github.com/agrovin/farmops-backend-go/internal/domain/farm"
	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/domain/worker"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/agrovin/farmops-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWageDB *database.DB

func wageTestInit(t *testing.T) {
	t.Helper()

	if testWageDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testWageDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateWageTables(t *testing.T, ctx context.Context) {
	t.Helper()

	tables := []string{"settlements", "wage_transactions", "attendance_records", "workers", "farms"}
	for _, table := range tables {
		_, err := testWageDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestWageService() *WageService {
	return NewWageService(
		testWageDB,
		postgresql.NewWorkerRepository(testWageDB),
		postgresql.NewFarmRepository(testWageDB),
		postgresql.NewAttendanceRepository(testWageDB),
		postgresql.NewTransactionRepository(testWageDB),
		postgresql.NewSettlementRepository(testWageDB),
		NewCalculator(),
	)
}

func createTestFarm(t *testing.T, ctx context.Context, name string) string {
	t.Helper()

	f, err := postgresql.NewFarmRepository(testWageDB).Create(ctx, farm.Farm{Name: name})
	require.NoError(t, err)
	return f.ID
}

func createTestWorker(t *testing.T, ctx context.Context, rate string) string {
	t.Helper()

	w, err := postgresql.NewWorkerRepository(testWageDB).Create(ctx, worker.Worker{
		FullName:  fmt.Sprintf("Test Worker %d", time.Now().UnixNano()),
		DailyRate: decimal.RequireFromString(rate),
	})
	require.NoError(t, err)
	return w.ID
}

func createTestRecord(t *testing.T, ctx context.Context, workerID string, farmIDs []string, date string, status attendance.WorkStatus) {
	t.Helper()

	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	_, err = postgresql.NewAttendanceRepository(testWageDB).Create(ctx, attendance.Record{
		WorkerID: workerID,
		FarmIDs:  farmIDs,
		Date:     d,
		Status:   status,
	})
	require.NoError(t, err)
}

func giveTestAdvance(t *testing.T, ctx context.Context, svc *WageService, workerID, farmID, amount string) {
	t.Helper()

	_, err := svc.GiveAdvance(ctx, wage.AdvanceRequest{
		WorkerID: workerID,
		FarmID:   farmID,
		Date:     "2025-06-01",
		Amount:   decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
}

func workerBalance(t *testing.T, ctx context.Context, workerID string) decimal.Decimal {
	t.Helper()

	w, err := postgresql.NewWorkerRepository(testWageDB).GetByID(ctx, workerID)
	require.NoError(t, err)
	return w.AdvanceBalance
}

func TestWageService_GiveAdvance_IncreasesBalance(t *testing.T) {
	ctx := context.Background()
	wageTestInit(t)
	truncateWageTables(t, ctx)

	svc := newTestWageService()
	farmID := createTestFarm(t, ctx, "North Field")
	workerID := createTestWorker(t, ctx, "300")

	result, err := svc.GiveAdvance(ctx, wage.AdvanceRequest{
		WorkerID: workerID,
		FarmID:   farmID,
		Date:     "2025-06-01",
		Amount:   decimal.RequireFromString("1000"),
	})
	require.NoError(t, err)

	assert.True(t, result.NewBalance.Equal(decimal.RequireFromString("1000")), "balance = %s", result.NewBalance)
	assert.Equal(t, string(wage.TxAdvanceGiven), result.Transaction.Type)

	txs, total, err := svc.ListTransactions(ctx, wage.TransactionFilter{WorkerID: &workerID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("1000")))
}

func TestWageService_GiveAdvance_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	wageTestInit(t)
	truncateWageTables(t, ctx)

	svc := newTestWageService()
	farmID := createTestFarm(t, ctx, "North Field")
	workerID := createTestWorker(t, ctx, "300")

	_, err := svc.GiveAdvance(ctx, wage.AdvanceRequest{
		WorkerID: workerID,
		FarmID:   farmID,
		Date:     "2025-06-01",
		Amount:   decimal.Zero,
	})
	assert.ErrorIs(t, err, wage.ErrInvalidAmount)
}

func TestWageService_DeductAdvance_RespectsBalance(t *testing.T) {
	ctx := context.Background()
	wageTestInit(t)
	truncateWageTables(t, ctx)

	svc := newTestWageService()
	farmID := createTestFarm(t, ctx, "North Field")
	workerID := createTestWorker(t, ctx, "300")
	giveTestAdvance(t, ctx, svc, workerID, farmID, "500")

	_, err := svc.DeductAdvance(ctx, wage.AdvanceRequest{
		WorkerID: workerID,
		FarmID:   farmID,
		Date:     "2025-06-02",
		Amount:   decimal.RequireFromString("600"),
	})
	assert.ErrorIs(t, err, wage.ErrExceedsAdvanceBalance)

	result, err := svc.DeductAdvance(ctx, wage.AdvanceRequest{
		WorkerID: workerID,
		FarmID:   farmID,
		Date:     "2025-06-02",
		Amount:   decimal.RequireFromString("200"),
	})
	require.NoError(t, err)
	assert.True(t, result.NewBalance.Equal(decimal.RequireFromString("300")), "balance = %s", result.NewBalance)
}

// Advance balance stays consistent with the ledger: starting balance plus
// everything given minus everything deducted.
func TestWageService_AdvanceLifecycle_BalanceMatchesLedger(t *testing.T) {
	ctx := context.Background()
	wageTestInit(t)
	truncateWageTables(t, ctx)

	svc := newTestWageService()
	farmID := createTestFarm(t, ctx, "North Field")
	workerID := createTestWorker(t, ctx, "300")

	giveTestAdvance(t, ctx, svc, workerID, farmID, "700")
	giveTestAdvance(t, ctx, svc, workerID, farmID, "300")

	_, err := svc.DeductAdvance(ctx, wage.AdvanceRequest{
		WorkerID: workerID,
		FarmID:   farmID,
		Date:     "2025-06-03",
		Amount:   decimal.RequireFromString("450"),
	})
	require.NoError(t, err)

	txs, _, err := svc.ListTransactions(ctx, wage.TransactionFilter{WorkerID: &workerID})
	require.NoError(t, err)

	ledgerBalance := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case string(wage.TxAdvanceGiven):
			ledgerBalance = ledgerBalance.Add(tx.Amount)
		case string(wage.TxAdvanceDeducted):
			ledgerBalance = ledgerBalance.Sub(tx.Amount)
		}
	}

	balance := workerBalance(t, ctx, workerID)
	assert.True(t, balance.Equal(ledgerBalance), "balance %s != ledger %s", balance, ledgerBalance)
	assert.True(t, balance.Equal(decimal.RequireFromString("550")))
}

// Full settlement flow: rate 300, balance 1000, Monday full plus Tuesday
// half plus Wednesday absent gives 1.5 days and 450 gross; confirming with
// a 200 deduction nets 250 and leaves 800 outstanding.
func TestWageService_SettlementRoundTrip(t *testing.T) {
	ctx := context.Background()
	wageTestInit(t)
	truncateWageTables(t, ctx)

	svc := newTestWageService()
	farmID := createTestFarm(t, ctx, "North Field")
	workerID := createTestWorker(t, ctx, "300")
	giveTestAdvance(t, ctx, svc, workerID, farmID, "1000")

	createTestRecord(t, ctx, workerID, []string{farmID}, "2025-06-02", attendance.StatusFullDay)
	createTestRecord(t, ctx, workerID, []string{farmID}, "2025-06-03", attendance.StatusHalfDay)
	createTestRecord(t, ctx, workerID, []string{farmID}, "2025-06-04", attendance.StatusAbsent)

	calc, err := svc.CalculateSettlement(ctx, wage.CalculateSettlementRequest{
		WorkerID:  workerID,
		StartDate: "2025-06-02",
		EndDate:   "2025-06-04",
	})
	require.NoError(t, err)

	assert.True(t, calc.DaysWorked.Equal(decimal.RequireFromString("1.5")), "days = %s", calc.DaysWorked)
	assert.True(t, calc.GrossAmount.Equal(decimal.RequireFromString("450")), "gross = %s", calc.GrossAmount)
	assert.True(t, calc.AdvanceBalance.Equal(decimal.RequireFromString("1000")))
	require.Len(t, calc.AttendanceDetails, 3)
	assert.Equal(t, "2025-06-02", calc.AttendanceDetails[0].Date)
	assert.Equal(t, "2025-06-04", calc.AttendanceDetails[2].Date)
	assert.True(t, calc.AttendanceDetails[2].Earnings.IsZero())

	settlement, err := svc.ConfirmSettlement(ctx, wage.ConfirmSettlementRequest{
		WorkerID:         workerID,
		FarmIDs:          []string{farmID},
		StartDate:        "2025-06-02",
		EndDate:          "2025-06-04",
		DaysWorked:       calc.DaysWorked,
		TotalSalary:      calc.GrossAmount,
		AdvanceDeduction: decimal.RequireFromString("200"),
	})
	require.NoError(t, err)

	assert.True(t, settlement.NetPayment.Equal(decimal.RequireFromString("250")), "net = %s", settlement.NetPayment)
	assert.True(t, workerBalance(t, ctx, workerID).Equal(decimal.RequireFromString("800")))

	// One payment row and one deduction row beyond the initial advance.
	txType := string(wage.TxPayment)
	payments, _, err := svc.ListTransactions(ctx, wage.TransactionFilter{WorkerID: &workerID, Type: &txType})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Amount.Equal(decimal.RequireFromString("250")))
}

func TestWageService_ConfirmSettlement_RejectsOverdrawnDeduction(t *testing.T) {
	ctx := context.Background()
	wageTestInit(t)
	truncateWageTables(t, ctx)

	svc := newTestWageService()
	farmID := createTestFarm(t, ctx, "North Field")
	workerID := createTestWorker(t, ctx, "300")
	giveTestAdvance(t, ctx, svc, workerID, farmID, "100")

	_, err := svc.ConfirmSettlement(ctx, wage.ConfirmSettlementRequest{
		WorkerID:         workerID,
		FarmIDs:          []string{farmID},
		StartDate:        "2025-06-02",
		EndDate:          "2025-06-04",
		DaysWorked:       decimal.RequireFromString("1"),
		TotalSalary:      decimal.RequireFromString("300"),
		AdvanceDeduction: decimal.RequireFromString("150"),
	})
	assert.ErrorIs(t, err, wage.ErrExceedsAdvanceBalance)

	// Nothing was persisted.
	assert.True(t, workerBalance(t, ctx, workerID).Equal(decimal.RequireFromString("100")))
	_, total, err := svc.ListSettlements(ctx, wage.SettlementFilter{WorkerID: &workerID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestWageService_ConfirmSettlement_ApportionsAcrossFarms(t *testing.T) {
	ctx := context.Background()
	wageTestInit(t)
	truncateWageTables(t, ctx)

	svc := newTestWageService()
	farmA := createTestFarm(t, ctx, "North Field")
	farmB := createTestFarm(t, ctx, "South Field")
	farmC := createTestFarm(t, ctx, "Winery Block")
	workerID := createTestWorker(t, ctx, "300")
	giveTestAdvance(t, ctx, svc, workerID, farmA, "500")

	_, err := svc.ConfirmSettlement(ctx, wage.ConfirmSettlementRequest{
		WorkerID:         workerID,
		FarmIDs:          []string{farmA, farmB, farmC},
		StartDate:        "2025-06-02",
		EndDate:          "2025-06-06",
		DaysWorked:       decimal.RequireFromString("5"),
		TotalSalary:      decimal.RequireFromString("1500"),
		AdvanceDeduction: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)

	txType := string(wage.TxAdvanceDeducted)
	deductions, _, err := svc.ListTransactions(ctx, wage.TransactionFilter{WorkerID: &workerID, Type: &txType})
	require.NoError(t, err)
	require.Len(t, deductions, 3)

	sum := decimal.Zero
	byFarm := make(map[string]decimal.Decimal, 3)
	for _, tx := range deductions {
		sum = sum.Add(tx.Amount)
		byFarm[tx.FarmID] = tx.Amount
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100")), "sum = %s", sum)
	assert.True(t, byFarm[farmA].Equal(decimal.RequireFromString("33.33")))
	assert.True(t, byFarm[farmB].Equal(decimal.RequireFromString("33.33")))
	assert.True(t, byFarm[farmC].Equal(decimal.RequireFromString("33.34")))
}
