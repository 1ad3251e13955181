package winery

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/winery"
)

// readingGracePeriod is how long a fermenting lot may go without a new
// reading before the overdue job flags it.
const readingGracePeriod = 24 * time.Hour

type WineryService struct {
	lotRepo     winery.LotRepository
	readingRepo winery.ReadingRepository
}

func NewWineryService(lotRepo winery.LotRepository, readingRepo winery.ReadingRepository) *WineryService {
	return &WineryService{lotRepo: lotRepo, readingRepo: readingRepo}
}

func (s *WineryService) CreateLot(ctx context.Context, req winery.CreateLotRequest) (winery.LotResponse, error) {
	if err := req.Validate(); err != nil {
		return winery.LotResponse{}, err
	}

	created, err := s.lotRepo.Create(ctx, winery.WineLot{
		Name:         req.Name,
		Varietal:     req.Varietal,
		Vintage:      req.Vintage,
		Tank:         req.Tank,
		VolumeLiters: req.VolumeLiters,
		Status:       winery.LotStatusFermenting,
		Notes:        req.Notes,
	})
	if err != nil {
		return winery.LotResponse{}, err
	}

	return mapLotResponse(created), nil
}

func (s *WineryService) GetLot(ctx context.Context, id string) (winery.LotResponse, error) {
	lot, err := s.lotRepo.GetByID(ctx, id)
	if err != nil {
		return winery.LotResponse{}, err
	}
	return mapLotResponse(lot), nil
}

func (s *WineryService) ListLots(ctx context.Context, status *string) ([]winery.LotResponse, error) {
	lots, err := s.lotRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	result := make([]winery.LotResponse, 0, len(lots))
	for _, lot := range lots {
		result = append(result, mapLotResponse(lot))
	}
	return result, nil
}

func (s *WineryService) UpdateLot(ctx context.Context, req winery.UpdateLotRequest) (winery.LotResponse, error) {
	if err := req.Validate(); err != nil {
		return winery.LotResponse{}, err
	}
	if err := s.lotRepo.Update(ctx, req); err != nil {
		return winery.LotResponse{}, err
	}
	return s.GetLot(ctx, req.ID)
}

// AddReading records a lab measurement for a lot. Readings are accepted
// only while the lot is fermenting or aging.
func (s *WineryService) AddReading(ctx context.Context, req winery.CreateReadingRequest) (winery.ReadingResponse, error) {
	if err := req.Validate(); err != nil {
		return winery.ReadingResponse{}, err
	}

	lot, err := s.lotRepo.GetByID(ctx, req.LotID)
	if err != nil {
		return winery.ReadingResponse{}, err
	}
	if lot.Status != winery.LotStatusFermenting && lot.Status != winery.LotStatusAging {
		return winery.ReadingResponse{}, winery.ErrLotNotActive
	}

	date, _ := time.Parse("2006-01-02", req.ReadingDate)

	created, err := s.readingRepo.Create(ctx, winery.FermentationReading{
		LotID:       lot.ID,
		ReadingDate: date,
		Brix:        req.Brix,
		Temperature: req.Temperature,
		PH:          req.PH,
		Notes:       req.Notes,
	})
	if err != nil {
		return winery.ReadingResponse{}, err
	}

	return mapReadingResponse(created), nil
}

func (s *WineryService) ListReadings(ctx context.Context, lotID string) ([]winery.ReadingResponse, error) {
	if _, err := s.lotRepo.GetByID(ctx, lotID); err != nil {
		return nil, err
	}

	readings, err := s.readingRepo.ListByLot(ctx, lotID)
	if err != nil {
		return nil, err
	}

	result := make([]winery.ReadingResponse, 0, len(readings))
	for _, r := range readings {
		result = append(result, mapReadingResponse(r))
	}
	return result, nil
}

// CheckOverdueReadings is the background job body: it logs every
// fermenting lot that has gone too long without a reading.
func (s *WineryService) CheckOverdueReadings(ctx context.Context) error {
	cutoff := time.Now().Add(-readingGracePeriod)

	lots, err := s.lotRepo.ListOverdueReadings(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, lot := range lots {
		slog.Warn("Fermenting lot has no recent reading",
			"lot_id", lot.ID, "lot_name", lot.Name, "cutoff", cutoff.Format("2006-01-02"))
	}
	return nil
}

func mapLotResponse(lot winery.WineLot) winery.LotResponse {
	return winery.LotResponse{
		ID:           lot.ID,
		Name:         lot.Name,
		Varietal:     lot.Varietal,
		Vintage:      lot.Vintage,
		Tank:         lot.Tank,
		VolumeLiters: lot.VolumeLiters,
		Status:       string(lot.Status),
		Notes:        lot.Notes,
	}
}

func mapReadingResponse(r winery.FermentationReading) winery.ReadingResponse {
	return winery.ReadingResponse{
		ID:          r.ID,
		LotID:       r.LotID,
		ReadingDate: r.ReadingDate.Format("2006-01-02"),
		Brix:        r.Brix,
		Temperature: r.Temperature,
		PH:          r.PH,
		Notes:       r.Notes,
	}
}
