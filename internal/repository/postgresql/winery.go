package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/winery"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type wineLotRepository struct {
	db *database.DB
}

func NewWineLotRepository(db *database.DB) winery.LotRepository {
	return &wineLotRepository{db: db}
}

func (r *wineLotRepository) Create(ctx context.Context, lot winery.WineLot) (winery.WineLot, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO wine_lots (id, name, varietal, vintage, tank, volume_liters, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, varietal, vintage, tank, volume_liters, status, notes, created_at, updated_at
	`

	var created winery.WineLot
	err := q.QueryRow(ctx, query,
		uuid.NewString(), lot.Name, lot.Varietal, lot.Vintage, lot.Tank, lot.VolumeLiters, lot.Status, lot.Notes,
	).Scan(
		&created.ID, &created.Name, &created.Varietal, &created.Vintage, &created.Tank,
		&created.VolumeLiters, &created.Status, &created.Notes, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return winery.WineLot{}, fmt.Errorf("failed to create wine lot: %w", err)
	}

	return created, nil
}

func (r *wineLotRepository) GetByID(ctx context.Context, id string) (winery.WineLot, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, name, varietal, vintage, tank, volume_liters, status, notes, created_at, updated_at
		FROM wine_lots
		WHERE id = $1
	`

	var lot winery.WineLot
	err := q.QueryRow(ctx, query, id).Scan(
		&lot.ID, &lot.Name, &lot.Varietal, &lot.Vintage, &lot.Tank,
		&lot.VolumeLiters, &lot.Status, &lot.Notes, &lot.CreatedAt, &lot.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return winery.WineLot{}, winery.ErrLotNotFound
		}
		return winery.WineLot{}, fmt.Errorf("failed to get wine lot: %w", err)
	}

	return lot, nil
}

func (r *wineLotRepository) List(ctx context.Context, status *string) ([]winery.WineLot, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, name, varietal, vintage, tank, volume_liters, status, notes, created_at, updated_at
		FROM wine_lots
	`
	args := []interface{}{}
	if status != nil {
		query += " WHERE status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY vintage DESC, name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list wine lots: %w", err)
	}
	defer rows.Close()

	var lots []winery.WineLot
	for rows.Next() {
		var lot winery.WineLot
		if err := rows.Scan(
			&lot.ID, &lot.Name, &lot.Varietal, &lot.Vintage, &lot.Tank,
			&lot.VolumeLiters, &lot.Status, &lot.Notes, &lot.CreatedAt, &lot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wine lot: %w", err)
		}
		lots = append(lots, lot)
	}

	return lots, nil
}

func (r *wineLotRepository) Update(ctx context.Context, req winery.UpdateLotRequest) error {
	q := r.db.Querier(ctx)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Tank != nil {
		setParts = append(setParts, fmt.Sprintf("tank = $%d", argIdx))
		args = append(args, *req.Tank)
		argIdx++
	}
	if req.VolumeLiters != nil {
		setParts = append(setParts, fmt.Sprintf("volume_liters = $%d", argIdx))
		args = append(args, *req.VolumeLiters)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}

	query := fmt.Sprintf("UPDATE wine_lots SET %s WHERE id = $1 RETURNING id", strings.Join(setParts, ", "))

	var id string
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if err == pgx.ErrNoRows {
			return winery.ErrLotNotFound
		}
		return fmt.Errorf("failed to update wine lot: %w", err)
	}

	return nil
}

func (r *wineLotRepository) ListOverdueReadings(ctx context.Context, cutoff time.Time) ([]winery.WineLot, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT l.id, l.name, l.varietal, l.vintage, l.tank, l.volume_liters, l.status, l.notes, l.created_at, l.updated_at
		FROM wine_lots l
		LEFT JOIN LATERAL (
			SELECT MAX(reading_date) AS last_reading
			FROM fermentation_readings fr
			WHERE fr.lot_id = l.id
		) r ON true
		WHERE l.status = 'fermenting'
		  AND (r.last_reading IS NULL OR r.last_reading < $1)
		ORDER BY l.name ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue lots: %w", err)
	}
	defer rows.Close()

	var lots []winery.WineLot
	for rows.Next() {
		var lot winery.WineLot
		if err := rows.Scan(
			&lot.ID, &lot.Name, &lot.Varietal, &lot.Vintage, &lot.Tank,
			&lot.VolumeLiters, &lot.Status, &lot.Notes, &lot.CreatedAt, &lot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wine lot: %w", err)
		}
		lots = append(lots, lot)
	}

	return lots, nil
}

type fermentationReadingRepository struct {
	db *database.DB
}

func NewFermentationReadingRepository(db *database.DB) winery.ReadingRepository {
	return &fermentationReadingRepository{db: db}
}

func (r *fermentationReadingRepository) Create(ctx context.Context, reading winery.FermentationReading) (winery.FermentationReading, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO fermentation_readings (id, lot_id, reading_date, brix, temperature, ph, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, lot_id, reading_date, brix, temperature, ph, notes, created_at
	`

	var created winery.FermentationReading
	err := q.QueryRow(ctx, query,
		uuid.NewString(), reading.LotID, reading.ReadingDate, reading.Brix, reading.Temperature, reading.PH, reading.Notes,
	).Scan(
		&created.ID, &created.LotID, &created.ReadingDate, &created.Brix,
		&created.Temperature, &created.PH, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return winery.FermentationReading{}, fmt.Errorf("failed to create fermentation reading: %w", err)
	}

	return created, nil
}

func (r *fermentationReadingRepository) ListByLot(ctx context.Context, lotID string) ([]winery.FermentationReading, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, lot_id, reading_date, brix, temperature, ph, notes, created_at
		FROM fermentation_readings
		WHERE lot_id = $1
		ORDER BY reading_date ASC
	`

	rows, err := q.Query(ctx, query, lotID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fermentation readings: %w", err)
	}
	defer rows.Close()

	var readings []winery.FermentationReading
	for rows.Next() {
		var reading winery.FermentationReading
		if err := rows.Scan(
			&reading.ID, &reading.LotID, &reading.ReadingDate, &reading.Brix,
			&reading.Temperature, &reading.PH, &reading.Notes, &reading.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fermentation reading: %w", err)
		}
		readings = append(readings, reading)
	}

	return readings, nil
}
