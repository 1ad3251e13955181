package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrovin/farmops-backend-go/internal/domain/worker"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO workers (id, full_name, daily_rate, advance_balance, is_active, phone, notes)
		VALUES ($1, $2, $3, 0, true, $4, $5)
		RETURNING id, full_name, daily_rate, advance_balance, is_active, phone, notes, created_at, updated_at
	`

	var created worker.Worker
	err := q.QueryRow(ctx, query, uuid.NewString(), w.FullName, w.DailyRate, w.Phone, w.Notes).Scan(
		&created.ID, &created.FullName, &created.DailyRate, &created.AdvanceBalance,
		&created.IsActive, &created.Phone, &created.Notes, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return created, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, full_name, daily_rate, advance_balance, is_active, phone, notes, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.FullName, &w.DailyRate, &w.AdvanceBalance,
		&w.IsActive, &w.Phone, &w.Notes, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) List(ctx context.Context, activeOnly bool) ([]worker.Worker, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, full_name, daily_rate, advance_balance, is_active, phone, notes, created_at, updated_at
		FROM workers
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY full_name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(
			&w.ID, &w.FullName, &w.DailyRate, &w.AdvanceBalance,
			&w.IsActive, &w.Phone, &w.Notes, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, nil
}

func (r *workerRepository) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	q := r.db.Querier(ctx)

	// advance_balance is deliberately not updatable here; it only moves
	// through AdjustAdvanceBalance.
	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.DailyRate != nil {
		setParts = append(setParts, fmt.Sprintf("daily_rate = $%d", argIdx))
		args = append(args, *req.DailyRate)
		argIdx++
	}
	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE workers
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}

	return nil
}

func (r *workerRepository) AdjustAdvanceBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	q := r.db.Querier(ctx)

	// Check and adjust in one statement: the row only updates when the
	// resulting balance stays non-negative, so a stale balance read can
	// never drive it below zero.
	query := `
		UPDATE workers
		SET advance_balance = advance_balance + $2, updated_at = NOW()
		WHERE id = $1 AND advance_balance + $2 >= 0
		RETURNING advance_balance
	`

	var balance decimal.Decimal
	err := q.QueryRow(ctx, query, id, delta).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, worker.ErrStaleBalance
		}
		return decimal.Zero, fmt.Errorf("failed to adjust advance balance: %w", err)
	}

	return balance, nil
}
