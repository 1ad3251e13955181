package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type transactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) wage.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Append(ctx context.Context, tx wage.Transaction) (wage.Transaction, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO wage_transactions (id, worker_id, farm_id, date, type, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, worker_id, farm_id, date, type, amount, notes, created_at
	`

	var created wage.Transaction
	err := q.QueryRow(ctx, query,
		uuid.NewString(), tx.WorkerID, tx.FarmID, tx.Date, tx.Type, tx.Amount, tx.Notes,
	).Scan(
		&created.ID, &created.WorkerID, &created.FarmID, &created.Date,
		&created.Type, &created.Amount, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return wage.Transaction{}, fmt.Errorf("failed to append transaction: %w", err)
	}

	return created, nil
}

func (r *transactionRepository) AppendAll(ctx context.Context, txs []wage.Transaction) ([]wage.Transaction, error) {
	created := make([]wage.Transaction, 0, len(txs))
	for _, tx := range txs {
		row, err := r.Append(ctx, tx)
		if err != nil {
			return nil, err
		}
		created = append(created, row)
	}
	return created, nil
}

func (r *transactionRepository) List(ctx context.Context, filter wage.TransactionFilter) ([]wage.Transaction, int64, error) {
	q := r.db.Querier(ctx)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		where = append(where, fmt.Sprintf("worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.FarmID != nil {
		where = append(where, fmt.Sprintf("farm_id = $%d", argIdx))
		args = append(args, *filter.FarmID)
		argIdx++
	}
	if filter.Type != nil {
		where = append(where, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *filter.Type)
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
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM wage_transactions WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
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
		SELECT id, worker_id, farm_id, date, type, amount, notes, created_at
		FROM wage_transactions
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []wage.Transaction
	for rows.Next() {
		var tx wage.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.WorkerID, &tx.FarmID, &tx.Date,
			&tx.Type, &tx.Amount, &tx.Notes, &tx.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, total, nil
}
