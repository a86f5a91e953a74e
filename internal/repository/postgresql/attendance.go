package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ptcpms/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/database"
)

const dayRecordColumns = `id, personnel_id, date, status, reason, approval_status, created_at, updated_at`

type dayRecordRepositoryImpl struct {
	db *database.DB
}

func NewDayRecordRepository(db *database.DB) attendance.DayRecordRepository {
	return &dayRecordRepositoryImpl{db: db}
}

// Create implements attendance.DayRecordRepository.
func (r *dayRecordRepositoryImpl) Create(ctx context.Context, ptype personnel.Type, rec attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (id, personnel_id, date, status, reason, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, attendanceTable(ptype))

	err := q.QueryRow(ctx, query,
		rec.ID, rec.PersonnelID, rec.Date, rec.Status, rec.Reason, rec.ApprovalStatus,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByPersonnelAndDate implements attendance.DayRecordRepository.
func (r *dayRecordRepositoryImpl) GetByPersonnelAndDate(ctx context.Context, ptype personnel.Type, personnelID string, date time.Time) (*attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE personnel_id = $1 AND date = $2
		LIMIT 1
	`, dayRecordColumns, attendanceTable(ptype))

	var rec attendance.DayRecord
	err := q.QueryRow(ctx, query, personnelID, date).Scan(
		&rec.ID, &rec.PersonnelID, &rec.Date, &rec.Status, &rec.Reason,
		&rec.ApprovalStatus, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.DayRecordRepository.
func (r *dayRecordRepositoryImpl) Update(ctx context.Context, ptype personnel.Type, id string, status attendance.Status, reason string, approval attendance.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, reason = $2, approval_status = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`, attendanceTable(ptype))

	var updatedID string
	err := q.QueryRow(ctx, query, status, reason, approval, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrDayRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// UpdateApproval implements attendance.DayRecordRepository.
func (r *dayRecordRepositoryImpl) UpdateApproval(ctx context.Context, ptype personnel.Type, id string, approval attendance.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET approval_status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`, attendanceTable(ptype))

	var updatedID string
	err := q.QueryRow(ctx, query, approval, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrDayRecordNotFound
		}
		return fmt.Errorf("failed to update approval status: %w", err)
	}

	return nil
}

// ListByPersonnel implements attendance.DayRecordRepository.
func (r *dayRecordRepositoryImpl) ListByPersonnel(ctx context.Context, ptype personnel.Type, personnelID string) ([]attendance.DayRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE personnel_id = $1
		ORDER BY date DESC
	`, dayRecordColumns, attendanceTable(ptype))

	return r.queryDayRecords(ctx, query, personnelID)
}

// ListByDate implements attendance.DayRecordRepository.
func (r *dayRecordRepositoryImpl) ListByDate(ctx context.Context, ptype personnel.Type, date time.Time) ([]attendance.DayRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE date = $1
		ORDER BY created_at
	`, dayRecordColumns, attendanceTable(ptype))

	return r.queryDayRecords(ctx, query, date)
}

func (r *dayRecordRepositoryImpl) queryDayRecords(ctx context.Context, query string, arg interface{}) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		var rec attendance.DayRecord
		err := rows.Scan(
			&rec.ID, &rec.PersonnelID, &rec.Date, &rec.Status, &rec.Reason,
			&rec.ApprovalStatus, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
