package worker

import (
	"context"

	"github.com/agrovin/farmops-backend-go/internal/domain/worker"
)

type WorkerService struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) *WorkerService {
	return &WorkerService{workerRepo: workerRepo}
}

func (s *WorkerService) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		FullName:  req.FullName,
		DailyRate: req.DailyRate,
		IsActive:  true,
		Phone:     req.Phone,
		Notes:     req.Notes,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapWorkerResponse(created), nil
}

func (s *WorkerService) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return mapWorkerResponse(w), nil
}

func (s *WorkerService) ListWorkers(ctx context.Context, activeOnly bool) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, mapWorkerResponse(w))
	}
	return result, nil
}

// UpdateWorker edits the worker's profile and standing rate. A rate edit
// is retroactive for attendance records without an override; records
// carrying an override keep it.
func (s *WorkerService) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}
	if err := s.workerRepo.Update(ctx, req); err != nil {
		return worker.WorkerResponse{}, err
	}
	return s.GetWorker(ctx, req.ID)
}

func mapWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:             w.ID,
		FullName:       w.FullName,
		DailyRate:      w.DailyRate,
		AdvanceBalance: w.AdvanceBalance,
		IsActive:       w.IsActive,
		Phone:          w.Phone,
		Notes:          w.Notes,
	}
}
