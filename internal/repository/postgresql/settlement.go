package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type settlementRepository struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) wage.SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) Append(ctx context.Context, s wage.Settlement) (wage.Settlement, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO settlements (id, worker_id, farm_id, period_start, period_end, days_worked, gross_amount, advance_deducted, net_payment, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, worker_id, farm_id, period_start, period_end, days_worked, gross_amount, advance_deducted, net_payment, notes, created_at
	`

	var created wage.Settlement
	err := q.QueryRow(ctx, query,
		uuid.NewString(), s.WorkerID, s.FarmID, s.PeriodStart, s.PeriodEnd,
		s.DaysWorked, s.GrossAmount, s.AdvanceDeducted, s.NetPayment, s.Notes,
	).Scan(
		&created.ID, &created.WorkerID, &created.FarmID, &created.PeriodStart, &created.PeriodEnd,
		&created.DaysWorked, &created.GrossAmount, &created.AdvanceDeducted, &created.NetPayment,
		&created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return wage.Settlement{}, fmt.Errorf("failed to append settlement: %w", err)
	}

	return created, nil
}

func (r *settlementRepository) GetByID(ctx context.Context, id string) (wage.Settlement, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT s.id, s.worker_id, s.farm_id, s.period_start, s.period_end, s.days_worked,
		       s.gross_amount, s.advance_deducted, s.net_payment, s.notes, s.created_at, w.full_name
		FROM settlements s
		JOIN workers w ON w.id = s.worker_id
		WHERE s.id = $1
	`

	var s wage.Settlement
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.WorkerID, &s.FarmID, &s.PeriodStart, &s.PeriodEnd, &s.DaysWorked,
		&s.GrossAmount, &s.AdvanceDeducted, &s.NetPayment, &s.Notes, &s.CreatedAt, &s.WorkerName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return wage.Settlement{}, wage.ErrSettlementNotFound
		}
		return wage.Settlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

func (r *settlementRepository) List(ctx context.Context, filter wage.SettlementFilter) ([]wage.Settlement, int64, error) {
	q := r.db.Querier(ctx)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		where = append(where, fmt.Sprintf("s.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.FarmID != nil {
		where = append(where, fmt.Sprintf("s.farm_id = $%d", argIdx))
		args = append(args, *filter.FarmID)
		argIdx++
	}
	if filter.StartDate != nil {
		where = append(where, fmt.Sprintf("s.period_end >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where = append(where, fmt.Sprintf("s.period_start <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM settlements s WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
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
		SELECT s.id, s.worker_id, s.farm_id, s.period_start, s.period_end, s.days_worked,
		       s.gross_amount, s.advance_deducted, s.net_payment, s.notes, s.created_at, w.full_name
		FROM settlements s
		JOIN workers w ON w.id = s.worker_id
		WHERE %s
		ORDER BY s.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []wage.Settlement
	for rows.Next() {
		var s wage.Settlement
		if err := rows.Scan(
			&s.ID, &s.WorkerID, &s.FarmID, &s.PeriodStart, &s.PeriodEnd, &s.DaysWorked,
			&s.GrossAmount, &s.AdvanceDeducted, &s.NetPayment, &s.Notes, &s.CreatedAt, &s.WorkerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, total, nil
}
