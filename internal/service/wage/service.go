package wage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/attendance"
	"github.com/agrovin/farmops-backend-go/internal/domain/farm"
	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/domain/worker"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type WageService struct {
	db             *database.DB
	workerRepo     worker.WorkerRepository
	farmRepo       farm.FarmRepository
	attendanceRepo attendance.AttendanceRepository
	txRepo         wage.TransactionRepository
	settlementRepo wage.SettlementRepository
	calc           *Calculator
}

func NewWageService(
	db *database.DB,
	workerRepo worker.WorkerRepository,
	farmRepo farm.FarmRepository,
	attendanceRepo attendance.AttendanceRepository,
	txRepo wage.TransactionRepository,
	settlementRepo wage.SettlementRepository,
	calc *Calculator,
) *WageService {
	return &WageService{
		db:             db,
		workerRepo:     workerRepo,
		farmRepo:       farmRepo,
		attendanceRepo: attendanceRepo,
		txRepo:         txRepo,
		settlementRepo: settlementRepo,
		calc:           calc,
	}
}

// Calculator exposes the pure arithmetic for collaborating services.
func (s *WageService) Calculator() *Calculator {
	return s.calc
}

// CalculateSettlement is a read-only projection: it fetches the worker's
// attendance in [start, end] (optionally one farm) and values it at the
// current rules. Nothing is persisted and no balance moves.
func (s *WageService) CalculateSettlement(ctx context.Context, req wage.CalculateSettlementRequest) (wage.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.CalculationResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return wage.CalculationResponse{}, err
	}
	if req.FarmID != nil {
		if _, err := s.farmRepo.GetByID(ctx, *req.FarmID); err != nil {
			return wage.CalculationResponse{}, err
		}
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.attendanceRepo.ListByWorkerAndRange(ctx, w.ID, req.FarmID, start, end)
	if err != nil {
		return wage.CalculationResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	calc, err := s.calc.BuildCalculation(w, records, req.FarmID, start, end)
	if err != nil {
		return wage.CalculationResponse{}, err
	}

	details := make([]wage.AttendanceDetailResponse, 0, len(calc.Details))
	for _, d := range calc.Details {
		details = append(details, wage.AttendanceDetailResponse{
			Date:          d.Date.Format("2006-01-02"),
			Status:        d.Status,
			WorkType:      d.WorkType,
			EffectiveRate: d.EffectiveRate,
			Earnings:      d.Earnings,
		})
	}

	return wage.CalculationResponse{
		WorkerID:          w.ID,
		WorkerName:        w.FullName,
		FarmID:            req.FarmID,
		PeriodStart:       req.StartDate,
		PeriodEnd:         req.EndDate,
		DaysWorked:        calc.DaysWorked,
		GrossAmount:       calc.GrossAmount,
		AdvanceBalance:    w.AdvanceBalance,
		AttendanceDetails: details,
	}, nil
}

// ConfirmSettlement finalizes a settlement: one immutable settlement row,
// per-farm ledger rows for the net payment and the advance deduction, and
// the balance decrement, all inside a single transaction. The balance
// check and decrement are one conditional UPDATE; when another writer
// races past it, the whole transaction is retried exactly once with a
// fresh balance read. Not idempotent: submitting twice settles twice.
func (s *WageService) ConfirmSettlement(ctx context.Context, req wage.ConfirmSettlementRequest) (wage.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.SettlementResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	ok, err := s.farmRepo.ExistAll(ctx, req.FarmIDs)
	if err != nil {
		return wage.SettlementResponse{}, err
	}
	if !ok {
		return wage.SettlementResponse{}, farm.ErrFarmNotFound
	}

	var created wage.Settlement
	attempt := func(txCtx context.Context) error {
		w, err := s.workerRepo.GetByID(txCtx, req.WorkerID)
		if err != nil {
			return err
		}
		if err := s.calc.ValidateConfirmation(req.TotalSalary, req.AdvanceDeduction, w.AdvanceBalance); err != nil {
			return err
		}

		net := req.TotalSalary.Sub(req.AdvanceDeduction)

		var farmRef *string
		if len(req.FarmIDs) == 1 {
			farmRef = &req.FarmIDs[0]
		}
		created, err = s.settlementRepo.Append(txCtx, wage.Settlement{
			WorkerID:        w.ID,
			FarmID:          farmRef,
			PeriodStart:     start,
			PeriodEnd:       end,
			DaysWorked:      req.DaysWorked,
			GrossAmount:     req.TotalSalary,
			AdvanceDeducted: req.AdvanceDeduction,
			NetPayment:      net,
			Notes:           req.Notes,
		})
		if err != nil {
			return err
		}

		var ledger []wage.Transaction
		if net.IsPositive() {
			ledger = append(ledger, s.farmSplit(w.ID, req.FarmIDs, end, wage.TxPayment, net, req.Notes)...)
		}
		if req.AdvanceDeduction.IsPositive() {
			ledger = append(ledger, s.farmSplit(w.ID, req.FarmIDs, end, wage.TxAdvanceDeducted, req.AdvanceDeduction, req.Notes)...)
		}
		if len(ledger) > 0 {
			if _, err := s.txRepo.AppendAll(txCtx, ledger); err != nil {
				return err
			}
		}

		if req.AdvanceDeduction.IsPositive() {
			if _, err := s.workerRepo.AdjustAdvanceBalance(txCtx, w.ID, req.AdvanceDeduction.Neg()); err != nil {
				return err
			}
		}
		return nil
	}

	err = database.WithTransaction(ctx, s.db, attempt)
	if errors.Is(err, worker.ErrStaleBalance) {
		// One retry with a fresh balance read. A second stale result is
		// surfaced as a conflict rather than retried forever.
		err = database.WithTransaction(ctx, s.db, attempt)
		if errors.Is(err, worker.ErrStaleBalance) {
			err = wage.ErrOptimisticConflict
		}
	}
	if err != nil {
		return wage.SettlementResponse{}, err
	}

	return mapSettlementResponse(created), nil
}

// GiveAdvance hands the worker cash ahead of wages: one advance_given
// ledger row plus the balance increase, atomically.
func (s *WageService) GiveAdvance(ctx context.Context, req wage.AdvanceRequest) (wage.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.AdvanceResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return wage.AdvanceResponse{}, wage.ErrInvalidAmount
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var tx wage.Transaction
	var balance decimal.Decimal
	err := database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.workerRepo.GetByID(txCtx, req.WorkerID); err != nil {
			return err
		}
		if _, err := s.farmRepo.GetByID(txCtx, req.FarmID); err != nil {
			return err
		}

		var err error
		tx, err = s.txRepo.Append(txCtx, wage.Transaction{
			WorkerID: req.WorkerID,
			FarmID:   req.FarmID,
			Date:     date,
			Type:     wage.TxAdvanceGiven,
			Amount:   req.Amount,
			Notes:    req.Notes,
		})
		if err != nil {
			return err
		}

		balance, err = s.workerRepo.AdjustAdvanceBalance(txCtx, req.WorkerID, req.Amount)
		return err
	})
	if err != nil {
		return wage.AdvanceResponse{}, err
	}

	return wage.AdvanceResponse{Transaction: mapTransactionResponse(tx), NewBalance: balance}, nil
}

// DeductAdvance recovers part of an outstanding advance outside a
// settlement. The deduction may never exceed the recorded balance.
func (s *WageService) DeductAdvance(ctx context.Context, req wage.AdvanceRequest) (wage.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.AdvanceResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return wage.AdvanceResponse{}, wage.ErrInvalidAmount
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var tx wage.Transaction
	var balance decimal.Decimal
	attempt := func(txCtx context.Context) error {
		w, err := s.workerRepo.GetByID(txCtx, req.WorkerID)
		if err != nil {
			return err
		}
		if _, err := s.farmRepo.GetByID(txCtx, req.FarmID); err != nil {
			return err
		}
		if req.Amount.GreaterThan(w.AdvanceBalance) {
			return wage.ErrExceedsAdvanceBalance
		}

		tx, err = s.txRepo.Append(txCtx, wage.Transaction{
			WorkerID: req.WorkerID,
			FarmID:   req.FarmID,
			Date:     date,
			Type:     wage.TxAdvanceDeducted,
			Amount:   req.Amount,
			Notes:    req.Notes,
		})
		if err != nil {
			return err
		}

		balance, err = s.workerRepo.AdjustAdvanceBalance(txCtx, req.WorkerID, req.Amount.Neg())
		return err
	}

	err := database.WithTransaction(ctx, s.db, attempt)
	if errors.Is(err, worker.ErrStaleBalance) {
		err = database.WithTransaction(ctx, s.db, attempt)
		if errors.Is(err, worker.ErrStaleBalance) {
			err = wage.ErrOptimisticConflict
		}
	}
	if err != nil {
		return wage.AdvanceResponse{}, err
	}

	return wage.AdvanceResponse{Transaction: mapTransactionResponse(tx), NewBalance: balance}, nil
}

func (s *WageService) GetSettlement(ctx context.Context, id string) (wage.SettlementResponse, error) {
	settlement, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return wage.SettlementResponse{}, err
	}
	return mapSettlementResponse(settlement), nil
}

func (s *WageService) ListSettlements(ctx context.Context, filter wage.SettlementFilter) ([]wage.SettlementResponse, int64, error) {
	settlements, total, err := s.settlementRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]wage.SettlementResponse, 0, len(settlements))
	for _, st := range settlements {
		result = append(result, mapSettlementResponse(st))
	}
	return result, total, nil
}

func (s *WageService) ListTransactions(ctx context.Context, filter wage.TransactionFilter) ([]wage.TransactionResponse, int64, error) {
	txs, total, err := s.txRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]wage.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		result = append(result, mapTransactionResponse(tx))
	}
	return result, total, nil
}

// farmSplit apportions amount across the farms and tags one ledger row
// per farm; each row carries exactly one farm reference.
func (s *WageService) farmSplit(workerID string, farmIDs []string, date time.Time, txType wage.TransactionType, amount decimal.Decimal, notes *string) []wage.Transaction {
	shares := s.calc.Apportion(amount, len(farmIDs))
	txs := make([]wage.Transaction, 0, len(shares))
	for i, share := range shares {
		if share.IsZero() {
			continue
		}
		txs = append(txs, wage.Transaction{
			WorkerID: workerID,
			FarmID:   farmIDs[i],
			Date:     date,
			Type:     txType,
			Amount:   share,
			Notes:    notes,
		})
	}
	return txs
}

func mapSettlementResponse(s wage.Settlement) wage.SettlementResponse {
	return wage.SettlementResponse{
		ID:              s.ID,
		WorkerID:        s.WorkerID,
		WorkerName:      s.WorkerName,
		FarmID:          s.FarmID,
		PeriodStart:     s.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       s.PeriodEnd.Format("2006-01-02"),
		DaysWorked:      s.DaysWorked,
		GrossAmount:     s.GrossAmount,
		AdvanceDeducted: s.AdvanceDeducted,
		NetPayment:      s.NetPayment,
		Notes:           s.Notes,
	}
}

func mapTransactionResponse(t wage.Transaction) wage.TransactionResponse {
	return wage.TransactionResponse{
		ID:       t.ID,
		WorkerID: t.WorkerID,
		FarmID:   t.FarmID,
		Date:     t.Date.Format("2006-01-02"),
		Type:     string(t.Type),
		Amount:   t.Amount,
		Notes:    t.Notes,
	}
}
