package attendance

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
	wagesvc "github.com/agrovin/farmops-backend-go/internal/service/wage"
	"github.com/shopspring/decimal"
)

type AttendanceService struct {
	db             *database.DB
	workerRepo     worker.WorkerRepository
	farmRepo       farm.FarmRepository
	attendanceRepo attendance.AttendanceRepository
	txRepo         wage.TransactionRepository
	calc           *wagesvc.Calculator
}

func NewAttendanceService(
	db *database.DB,
	workerRepo worker.WorkerRepository,
	farmRepo farm.FarmRepository,
	attendanceRepo attendance.AttendanceRepository,
	txRepo wage.TransactionRepository,
	calc *wagesvc.Calculator,
) *AttendanceService {
	return &AttendanceService{
		db:             db,
		workerRepo:     workerRepo,
		farmRepo:       farmRepo,
		attendanceRepo: attendanceRepo,
		txRepo:         txRepo,
		calc:           calc,
	}
}

// CreateRecord stores one worker-day. When the caller entered a total
// salary instead of a rate, the implied per-day rate is derived and kept
// as an override only when it meaningfully deviates from the worker's
// standing rate. An optional inline advance deduction is recovered in
// the same transaction, apportioned across the selected farms.
func (s *AttendanceService) CreateRecord(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	ok, err := s.farmRepo.ExistAll(ctx, req.FarmIDs)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !ok {
		return attendance.RecordResponse{}, farm.ErrFarmNotFound
	}

	var created attendance.Record
	var w worker.Worker
	attempt := func(txCtx context.Context) error {
		var err error
		w, err = s.workerRepo.GetByID(txCtx, req.WorkerID)
		if err != nil {
			return err
		}

		override := req.DailyRateOverride
		if req.EnteredSalary != nil {
			override, err = s.calc.InferRateOverride(*req.EnteredSalary, attendance.WorkStatus(req.Status), w.DailyRate)
			if err != nil {
				return err
			}
		}

		created, err = s.attendanceRepo.Create(txCtx, attendance.Record{
			WorkerID:          w.ID,
			FarmIDs:           req.FarmIDs,
			Date:              date,
			Status:            attendance.WorkStatus(req.Status),
			DailyRateOverride: override,
			WorkType:          req.WorkType,
			Notes:             req.Notes,
		})
		if err != nil {
			return err
		}

		if req.AdvanceDeduction != nil {
			if err := s.deductInline(txCtx, w, req.FarmIDs, date, *req.AdvanceDeduction); err != nil {
				return err
			}
		}
		return nil
	}

	err = database.WithTransaction(ctx, s.db, attempt)
	if errors.Is(err, worker.ErrStaleBalance) {
		err = database.WithTransaction(ctx, s.db, attempt)
		if errors.Is(err, worker.ErrStaleBalance) {
			err = wage.ErrOptimisticConflict
		}
	}
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.mapRecordResponse(created, w.FullName, w.DailyRate)
}

func (s *AttendanceService) deductInline(ctx context.Context, w worker.Worker, farmIDs []string, date time.Time, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return wage.ErrInvalidAmount
	}
	if amount.GreaterThan(w.AdvanceBalance) {
		return wage.ErrExceedsAdvanceBalance
	}

	shares := s.calc.Apportion(amount, len(farmIDs))
	txs := make([]wage.Transaction, 0, len(shares))
	for i, share := range shares {
		if share.IsZero() {
			continue
		}
		txs = append(txs, wage.Transaction{
			WorkerID: w.ID,
			FarmID:   farmIDs[i],
			Date:     date,
			Type:     wage.TxAdvanceDeducted,
			Amount:   share,
		})
	}
	if len(txs) > 0 {
		if _, err := s.txRepo.AppendAll(ctx, txs); err != nil {
			return err
		}
	}

	_, err := s.workerRepo.AdjustAdvanceBalance(ctx, w.ID, amount.Neg())
	return err
}

func (s *AttendanceService) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return s.mapJoinedRecord(ctx, rec)
}

func (s *AttendanceService) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordResponse, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordResponse{}, err
	}

	data := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp, err := s.mapJoinedRecord(ctx, rec)
		if err != nil {
			return attendance.ListRecordResponse{}, err
		}
		data = append(data, resp)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	return attendance.ListRecordResponse{
		Data:       data,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

func (s *AttendanceService) DeleteRecord(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// mapJoinedRecord values a record that came back with its worker joined.
// Records fetched without the join fall back to a worker lookup.
func (s *AttendanceService) mapJoinedRecord(ctx context.Context, rec attendance.Record) (attendance.RecordResponse, error) {
	var name string
	var rate decimal.Decimal
	if rec.WorkerName != nil && rec.WorkerDailyRate != nil {
		name = *rec.WorkerName
		rate = *rec.WorkerDailyRate
	} else {
		w, err := s.workerRepo.GetByID(ctx, rec.WorkerID)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		name = w.FullName
		rate = w.DailyRate
	}
	return s.mapRecordResponse(rec, name, rate)
}

func (s *AttendanceService) mapRecordResponse(rec attendance.Record, workerName string, workerRate decimal.Decimal) (attendance.RecordResponse, error) {
	pay, err := s.calc.RecordPay(rec, worker.Worker{ID: rec.WorkerID, DailyRate: workerRate})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to value attendance record %s: %w", rec.ID, err)
	}

	effective := workerRate
	if rec.DailyRateOverride != nil {
		effective = *rec.DailyRateOverride
	}

	return attendance.RecordResponse{
		ID:                rec.ID,
		WorkerID:          rec.WorkerID,
		WorkerName:        &workerName,
		FarmIDs:           rec.FarmIDs,
		Date:              rec.Date.Format("2006-01-02"),
		Status:            string(rec.Status),
		DailyRateOverride: rec.DailyRateOverride,
		EffectiveRate:     effective,
		Pay:               pay,
		WorkType:          rec.WorkType,
		Notes:             rec.Notes,
	}, nil
}
