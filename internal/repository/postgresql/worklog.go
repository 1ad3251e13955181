package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/worklog"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workOrderRepository struct {
	db *database.DB
}

func NewWorkOrderRepository(db *database.DB) worklog.OrderRepository {
	return &workOrderRepository{db: db}
}

func (r *workOrderRepository) Create(ctx context.Context, o worklog.WorkOrder) (worklog.WorkOrder, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO work_orders (id, farm_id, title, description, status, due_date, worker_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, farm_id, title, description, status, due_date, worker_id, created_at, updated_at
	`

	var created worklog.WorkOrder
	err := q.QueryRow(ctx, query,
		uuid.NewString(), o.FarmID, o.Title, o.Description, o.Status, o.DueDate, o.WorkerID,
	).Scan(
		&created.ID, &created.FarmID, &created.Title, &created.Description,
		&created.Status, &created.DueDate, &created.WorkerID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return worklog.WorkOrder{}, fmt.Errorf("failed to create work order: %w", err)
	}

	return created, nil
}

func (r *workOrderRepository) GetByID(ctx context.Context, id string) (worklog.WorkOrder, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, farm_id, title, description, status, due_date, worker_id, created_at, updated_at
		FROM work_orders
		WHERE id = $1
	`

	var o worklog.WorkOrder
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.FarmID, &o.Title, &o.Description, &o.Status, &o.DueDate, &o.WorkerID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.WorkOrder{}, worklog.ErrOrderNotFound
		}
		return worklog.WorkOrder{}, fmt.Errorf("failed to get work order: %w", err)
	}

	return o, nil
}

func (r *workOrderRepository) List(ctx context.Context, farmID *string, status *string) ([]worklog.WorkOrder, error) {
	q := r.db.Querier(ctx)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if farmID != nil {
		where = append(where, fmt.Sprintf("farm_id = $%d", argIdx))
		args = append(args, *farmID)
		argIdx++
	}
	if status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, farm_id, title, description, status, due_date, worker_id, created_at, updated_at
		FROM work_orders
		WHERE %s
		ORDER BY due_date ASC NULLS LAST, created_at DESC
	`, strings.Join(where, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	defer rows.Close()

	var orders []worklog.WorkOrder
	for rows.Next() {
		var o worklog.WorkOrder
		if err := rows.Scan(
			&o.ID, &o.FarmID, &o.Title, &o.Description, &o.Status, &o.DueDate, &o.WorkerID, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *workOrderRepository) Update(ctx context.Context, req worklog.UpdateOrderRequest) error {
	q := r.db.Querier(ctx)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, *req.Title)
		argIdx++
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.DueDate != nil {
		setParts = append(setParts, fmt.Sprintf("due_date = $%d", argIdx))
		args = append(args, *req.DueDate)
		argIdx++
	}
	if req.WorkerID != nil {
		setParts = append(setParts, fmt.Sprintf("worker_id = $%d", argIdx))
		args = append(args, *req.WorkerID)
		argIdx++
	}

	query := fmt.Sprintf("UPDATE work_orders SET %s WHERE id = $1 RETURNING id", strings.Join(setParts, ", "))

	var id string
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if err == pgx.ErrNoRows {
			return worklog.ErrOrderNotFound
		}
		return fmt.Errorf("failed to update work order: %w", err)
	}

	return nil
}

func (r *workOrderRepository) ListOverdue(ctx context.Context, now time.Time) ([]worklog.WorkOrder, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, farm_id, title, description, status, due_date, worker_id, created_at, updated_at
		FROM work_orders
		WHERE status IN ('open', 'in_progress') AND due_date IS NOT NULL AND due_date < $1
		ORDER BY due_date ASC
	`

	rows, err := q.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue work orders: %w", err)
	}
	defer rows.Close()

	var orders []worklog.WorkOrder
	for rows.Next() {
		var o worklog.WorkOrder
		if err := rows.Scan(
			&o.ID, &o.FarmID, &o.Title, &o.Description, &o.Status, &o.DueDate, &o.WorkerID, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

type activityLogRepository struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) worklog.ActivityRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, a worklog.ActivityLog) (worklog.ActivityLog, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO activity_logs (id, farm_id, date, category, description, hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, farm_id, date, category, description, hours, created_at
	`

	var created worklog.ActivityLog
	err := q.QueryRow(ctx, query,
		uuid.NewString(), a.FarmID, a.Date, a.Category, a.Description, a.Hours,
	).Scan(
		&created.ID, &created.FarmID, &created.Date, &created.Category,
		&created.Description, &created.Hours, &created.CreatedAt,
	)
	if err != nil {
		return worklog.ActivityLog{}, fmt.Errorf("failed to create activity log: %w", err)
	}

	return created, nil
}

func (r *activityLogRepository) List(ctx context.Context, filter worklog.ActivityFilter) ([]worklog.ActivityLog, int64, error) {
	q := r.db.Querier(ctx)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.FarmID != nil {
		where = append(where, fmt.Sprintf("farm_id = $%d", argIdx))
		args = append(args, *filter.FarmID)
		argIdx++
	}
	if filter.StartDate != nil {
		where = append(where, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where = append(where, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM activity_logs WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := fmt.Sprintf(`
		SELECT id, farm_id, date, category, description, hours, created_at
		FROM activity_logs
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []worklog.ActivityLog
	for rows.Next() {
		var a worklog.ActivityLog
		if err := rows.Scan(
			&a.ID, &a.FarmID, &a.Date, &a.Category, &a.Description, &a.Hours, &a.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity log: %w", err)
		}
		logs = append(logs, a)
	}

	return logs, total, nil
}

func (r *activityLogRepository) Delete(ctx context.Context, id string) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM activity_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worklog.ErrActivityNotFound
	}

	return nil
}
