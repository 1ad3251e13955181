package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/attendance"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := r.db.Querier(ctx)

	query := `
		INSERT INTO attendance_records (id, worker_id, farm_ids, date, work_status, daily_rate_override, work_type, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, worker_id, farm_ids, date, work_status, daily_rate_override, work_type, notes, created_at, updated_at
	`

	var created attendance.Record
	err := q.QueryRow(ctx, query,
		uuid.NewString(), rec.WorkerID, rec.FarmIDs, rec.Date, rec.Status, rec.DailyRateOverride, rec.WorkType, rec.Notes,
	).Scan(
		&created.ID, &created.WorkerID, &created.FarmIDs, &created.Date, &created.Status,
		&created.DailyRateOverride, &created.WorkType, &created.Notes, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_worker_date") {
			return attendance.Record{}, attendance.ErrDuplicateEntry
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT a.id, a.worker_id, a.farm_ids, a.date, a.work_status, a.daily_rate_override,
		       a.work_type, a.notes, a.created_at, a.updated_at, w.full_name, w.daily_rate
		FROM attendance_records a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.WorkerID, &rec.FarmIDs, &rec.Date, &rec.Status, &rec.DailyRateOverride,
		&rec.WorkType, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt, &rec.WorkerName, &rec.WorkerDailyRate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) ListByWorkerAndRange(ctx context.Context, workerID string, farmID *string, start, end time.Time) ([]attendance.Record, error) {
	q := r.db.Querier(ctx)

	query := `
		SELECT id, worker_id, farm_ids, date, work_status, daily_rate_override, work_type, notes, created_at, updated_at
		FROM attendance_records
		WHERE worker_id = $1 AND date >= $2 AND date <= $3
	`
	args := []interface{}{workerID, start, end}
	if farmID != nil {
		query += " AND $4 = ANY(farm_ids)"
		args = append(args, *farmID)
	}
	query += " ORDER BY date ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.FarmIDs, &rec.Date, &rec.Status,
			&rec.DailyRateOverride, &rec.WorkType, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := r.db.Querier(ctx)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		where = append(where, fmt.Sprintf("a.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.FarmID != nil {
		where = append(where, fmt.Sprintf("$%d = ANY(a.farm_ids)", argIdx))
		args = append(args, *filter.FarmID)
		argIdx++
	}
	if filter.StartDate != nil {
		where = append(where, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where = append(where, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendance_records a WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
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
		SELECT a.id, a.worker_id, a.farm_ids, a.date, a.work_status, a.daily_rate_override,
		       a.work_type, a.notes, a.created_at, a.updated_at, w.full_name, w.daily_rate
		FROM attendance_records a
		JOIN workers w ON w.id = a.worker_id
		WHERE %s
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.FarmIDs, &rec.Date, &rec.Status, &rec.DailyRateOverride,
			&rec.WorkType, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt, &rec.WorkerName, &rec.WorkerDailyRate,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
