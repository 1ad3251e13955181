package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrovin/farmops-backend-go/internal/domain/farm"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type farmRepository struct {
	db *database.DB
}

func NewFarmRepository(db *database.DB) farm.FarmRepository {
	return &farmRepository{db: db}
}

func (r *farmRepository) Create(ctx context.Context, f farm.Farm) (farm.Farm, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO farms (id, name, location, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, name, location, is_active, created_at, updated_at
	`

	var created farm.Farm
	err := q.QueryRow(ctx, query, uuid.NewString(), f.Name, f.Location).Scan(
		&created.ID, &created.Name, &created.Location, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_farm_name") {
			return farm.Farm{}, farm.ErrFarmNameExists
		}
		return farm.Farm{}, fmt.Errorf("failed to create farm: %w", err)
	}

	return created, nil
}

func (r *farmRepository) GetByID(ctx context.Context, id string) (farm.Farm, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, name, location, is_active, created_at, updated_at
		FROM farms
		WHERE id = $1
	`

	var f farm.Farm
	err := q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Location, &f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return farm.Farm{}, farm.ErrFarmNotFound
		}
		return farm.Farm{}, fmt.Errorf("failed to get farm: %w", err)
	}

	return f, nil
}

func (r *farmRepository) List(ctx context.Context, activeOnly bool) ([]farm.Farm, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, name, location, is_active, created_at, updated_at
		FROM farms
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	defer rows.Close()

	var farms []farm.Farm
	for rows.Next() {
		var f farm.Farm
		if err := rows.Scan(&f.ID, &f.Name, &f.Location, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan farm: %w", err)
		}
		farms = append(farms, f)
	}

	return farms, nil
}

func (r *farmRepository) Update(ctx context.Context, req farm.UpdateFarmRequest) error {
	q := r.db.Querier(ctx)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Location != nil {
		setParts = append(setParts, fmt.Sprintf("location = $%d", argIdx))
		args = append(args, *req.Location)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE farms
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return farm.ErrFarmNotFound
		}
		if strings.Contains(err.Error(), "uk_farm_name") {
			return farm.ErrFarmNameExists
		}
		return fmt.Errorf("failed to update farm: %w", err)
	}

	return nil
}

func (r *farmRepository) ExistAll(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	q := r.db.Querier(ctx)

	query := `SELECT COUNT(DISTINCT id) FROM farms WHERE id = ANY($1)`

	var count int
	if err := q.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check farms: %w", err)
	}

	distinct := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}
	return count == len(distinct), nil
}
