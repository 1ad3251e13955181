package tempworker

import (
	"context"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/farm"
	"github.com/agrovin/farmops-backend-go/internal/domain/tempworker"
)

type TempWorkerService struct {
	entryRepo tempworker.EntryRepository
	farmRepo  farm.FarmRepository
}

func NewTempWorkerService(entryRepo tempworker.EntryRepository, farmRepo farm.FarmRepository) *TempWorkerService {
	return &TempWorkerService{entryRepo: entryRepo, farmRepo: farmRepo}
}

// CreateEntry records one day of casual labor. The amount is paid out on
// the spot, so no balance or settlement is involved.
func (s *TempWorkerService) CreateEntry(ctx context.Context, req tempworker.CreateEntryRequest) (tempworker.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return tempworker.EntryResponse{}, err
	}
	if _, err := s.farmRepo.GetByID(ctx, req.FarmID); err != nil {
		return tempworker.EntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.entryRepo.Create(ctx, tempworker.Entry{
		Name:        req.Name,
		FarmID:      req.FarmID,
		Date:        date,
		HoursWorked: req.HoursWorked,
		AmountPaid:  req.AmountPaid,
		Notes:       req.Notes,
	})
	if err != nil {
		return tempworker.EntryResponse{}, err
	}

	return mapEntryResponse(created), nil
}

func (s *TempWorkerService) GetEntry(ctx context.Context, id string) (tempworker.EntryResponse, error) {
	e, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return tempworker.EntryResponse{}, err
	}
	return mapEntryResponse(e), nil
}

func (s *TempWorkerService) ListEntries(ctx context.Context, filter tempworker.EntryFilter) ([]tempworker.EntryResponse, int64, error) {
	entries, total, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]tempworker.EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapEntryResponse(e))
	}
	return result, total, nil
}

func (s *TempWorkerService) DeleteEntry(ctx context.Context, id string) error {
	return s.entryRepo.Delete(ctx, id)
}

func mapEntryResponse(e tempworker.Entry) tempworker.EntryResponse {
	return tempworker.EntryResponse{
		ID:          e.ID,
		Name:        e.Name,
		FarmID:      e.FarmID,
		Date:        e.Date.Format("2006-01-02"),
		HoursWorked: e.HoursWorked,
		AmountPaid:  e.AmountPaid,
		Notes:       e.Notes,
	}
}
