package worklog

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/farm"
	"github.com/agrovin/farmops-backend-go/internal/domain/worker"
	"github.com/agrovin/farmops-backend-go/internal/domain/worklog"
)

type WorklogService struct {
	orderRepo    worklog.OrderRepository
	activityRepo worklog.ActivityRepository
	farmRepo     farm.FarmRepository
	workerRepo   worker.WorkerRepository
}

func NewWorklogService(
	orderRepo worklog.OrderRepository,
	activityRepo worklog.ActivityRepository,
	farmRepo farm.FarmRepository,
	workerRepo worker.WorkerRepository,
) *WorklogService {
	return &WorklogService{
		orderRepo:    orderRepo,
		activityRepo: activityRepo,
		farmRepo:     farmRepo,
		workerRepo:   workerRepo,
	}
}

func (s *WorklogService) CreateOrder(ctx context.Context, req worklog.CreateOrderRequest) (worklog.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.OrderResponse{}, err
	}
	if _, err := s.farmRepo.GetByID(ctx, req.FarmID); err != nil {
		return worklog.OrderResponse{}, err
	}
	if req.WorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.WorkerID); err != nil {
			return worklog.OrderResponse{}, err
		}
	}

	var due *time.Time
	if req.DueDate != nil {
		d, _ := time.Parse("2006-01-02", *req.DueDate)
		due = &d
	}

	created, err := s.orderRepo.Create(ctx, worklog.WorkOrder{
		FarmID:      req.FarmID,
		Title:       req.Title,
		Description: req.Description,
		Status:      worklog.OrderStatusOpen,
		DueDate:     due,
		WorkerID:    req.WorkerID,
	})
	if err != nil {
		return worklog.OrderResponse{}, err
	}

	return mapOrderResponse(created), nil
}

func (s *WorklogService) GetOrder(ctx context.Context, id string) (worklog.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return worklog.OrderResponse{}, err
	}
	return mapOrderResponse(o), nil
}

func (s *WorklogService) ListOrders(ctx context.Context, farmID *string, status *string) ([]worklog.OrderResponse, error) {
	orders, err := s.orderRepo.List(ctx, farmID, status)
	if err != nil {
		return nil, err
	}

	result := make([]worklog.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, mapOrderResponse(o))
	}
	return result, nil
}

func (s *WorklogService) UpdateOrder(ctx context.Context, req worklog.UpdateOrderRequest) (worklog.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.OrderResponse{}, err
	}
	if req.WorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.WorkerID); err != nil {
			return worklog.OrderResponse{}, err
		}
	}
	if err := s.orderRepo.Update(ctx, req); err != nil {
		return worklog.OrderResponse{}, err
	}
	return s.GetOrder(ctx, req.ID)
}

func (s *WorklogService) CreateActivity(ctx context.Context, req worklog.CreateActivityRequest) (worklog.ActivityResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.ActivityResponse{}, err
	}
	if _, err := s.farmRepo.GetByID(ctx, req.FarmID); err != nil {
		return worklog.ActivityResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.activityRepo.Create(ctx, worklog.ActivityLog{
		FarmID:      req.FarmID,
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Hours:       req.Hours,
	})
	if err != nil {
		return worklog.ActivityResponse{}, err
	}

	return mapActivityResponse(created), nil
}

func (s *WorklogService) ListActivities(ctx context.Context, filter worklog.ActivityFilter) ([]worklog.ActivityResponse, int64, error) {
	logs, total, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]worklog.ActivityResponse, 0, len(logs))
	for _, a := range logs {
		result = append(result, mapActivityResponse(a))
	}
	return result, total, nil
}

func (s *WorklogService) DeleteActivity(ctx context.Context, id string) error {
	return s.activityRepo.Delete(ctx, id)
}

// CheckOverdueOrders is the background job body: it logs every order
// still open past its due date.
func (s *WorklogService) CheckOverdueOrders(ctx context.Context) error {
	orders, err := s.orderRepo.ListOverdue(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, o := range orders {
		slog.Warn("Work order is overdue",
			"order_id", o.ID, "title", o.Title, "due_date", o.DueDate.Format("2006-01-02"))
	}
	return nil
}

func mapOrderResponse(o worklog.WorkOrder) worklog.OrderResponse {
	var due *string
	if o.DueDate != nil {
		d := o.DueDate.Format("2006-01-02")
		due = &d
	}
	return worklog.OrderResponse{
		ID:          o.ID,
		FarmID:      o.FarmID,
		Title:       o.Title,
		Description: o.Description,
		Status:      string(o.Status),
		DueDate:     due,
		WorkerID:    o.WorkerID,
	}
}

func mapActivityResponse(a worklog.ActivityLog) worklog.ActivityResponse {
	return worklog.ActivityResponse{
		ID:          a.ID,
		FarmID:      a.FarmID,
		Date:        a.Date.Format("2006-01-02"),
		Category:    a.Category,
		Description: a.Description,
		Hours:       a.Hours,
	}
}
