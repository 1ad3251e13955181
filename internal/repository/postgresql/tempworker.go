package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrovin/farmops-backend-go/internal/domain/tempworker"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type tempWorkerRepository struct {
	db *database.DB
}

func NewTempWorkerRepository(db *database.DB) tempworker.EntryRepository {
	return &tempWorkerRepository{db: db}
}

func (r *tempWorkerRepository) Create(ctx context.Context, e tempworker.Entry) (tempworker.Entry, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO temporary_worker_entries (id, name, farm_id, date, hours_worked, amount_paid, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, farm_id, date, hours_worked, amount_paid, notes, created_at
	`

	var created tempworker.Entry
	err := q.QueryRow(ctx, query,
		uuid.NewString(), e.Name, e.FarmID, e.Date, e.HoursWorked, e.AmountPaid, e.Notes,
	).Scan(
		&created.ID, &created.Name, &created.FarmID, &created.Date,
		&created.HoursWorked, &created.AmountPaid, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return tempworker.Entry{}, fmt.Errorf("failed to create temporary worker entry: %w", err)
	}

	return created, nil
}

func (r *tempWorkerRepository) GetByID(ctx context.Context, id string) (tempworker.Entry, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, name, farm_id, date, hours_worked, amount_paid, notes, created_at
		FROM temporary_worker_entries
		WHERE id = $1
	`

	var e tempworker.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.FarmID, &e.Date, &e.HoursWorked, &e.AmountPaid, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tempworker.Entry{}, tempworker.ErrEntryNotFound
		}
		return tempworker.Entry{}, fmt.Errorf("failed to get temporary worker entry: %w", err)
	}

	return e, nil
}

func (r *tempWorkerRepository) List(ctx context.Context, filter tempworker.EntryFilter) ([]tempworker.Entry, int64, error) {
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
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM temporary_worker_entries WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count temporary worker entries: %w", err)
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
		SELECT id, name, farm_id, date, hours_worked, amount_paid, notes, created_at
		FROM temporary_worker_entries
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list temporary worker entries: %w", err)
	}
	defer rows.Close()

	var entries []tempworker.Entry
	for rows.Next() {
		var e tempworker.Entry
		if err := rows.Scan(
			&e.ID, &e.Name, &e.FarmID, &e.Date, &e.HoursWorked, &e.AmountPaid, &e.Notes, &e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan temporary worker entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}

func (r *tempWorkerRepository) Delete(ctx context.Context, id string) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM temporary_worker_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete temporary worker entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tempworker.ErrEntryNotFound
	}

	return nil
}
