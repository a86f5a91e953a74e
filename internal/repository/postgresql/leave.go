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

const leaveRecordColumns = `id, personnel_id, start_date, end_date, reason, leave_type, status, created_at, updated_at`

type leaveRecordRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) attendance.LeaveRecordRepository {
	return &leaveRecordRepositoryImpl{db: db}
}

// Create implements attendance.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Create(ctx context.Context, ptype personnel.Type, rec attendance.LeaveRecord) (attendance.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (id, personnel_id, start_date, end_date, reason, leave_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, leaveTable(ptype))

	err := q.QueryRow(ctx, query,
		rec.ID, rec.PersonnelID, rec.StartDate, rec.EndDate, rec.Reason, rec.LeaveType, rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.LeaveRecord{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetByID(ctx context.Context, ptype personnel.Type, id string) (attendance.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, leaveRecordColumns, leaveTable(ptype))

	var rec attendance.LeaveRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.PersonnelID, &rec.StartDate, &rec.EndDate, &rec.Reason,
		&rec.LeaveType, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.LeaveRecord{}, attendance.ErrLeaveRecordNotFound
		}
		return attendance.LeaveRecord{}, fmt.Errorf("failed to get leave record: %w", err)
	}

	return rec, nil
}

// GetByPersonnelAndStartDate implements attendance.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetByPersonnelAndStartDate(ctx context.Context, ptype personnel.Type, personnelID string, startDate time.Time) (*attendance.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE personnel_id = $1 AND start_date = $2
		LIMIT 1
	`, leaveRecordColumns, leaveTable(ptype))

	var rec attendance.LeaveRecord
	err := q.QueryRow(ctx, query, personnelID, startDate).Scan(
		&rec.ID, &rec.PersonnelID, &rec.StartDate, &rec.EndDate, &rec.Reason,
		&rec.LeaveType, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave record by start date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Update(ctx context.Context, ptype personnel.Type, id string, endDate time.Time, reason string, leaveType attendance.LeaveType, status attendance.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET end_date = $1, reason = $2, leave_type = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`, leaveTable(ptype))

	var updatedID string
	err := q.QueryRow(ctx, query, endDate, reason, leaveType, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrLeaveRecordNotFound
		}
		return fmt.Errorf("failed to update leave record: %w", err)
	}

	return nil
}

// UpdateStatus implements attendance.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) UpdateStatus(ctx context.Context, ptype personnel.Type, id string, status attendance.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`, leaveTable(ptype))

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrLeaveRecordNotFound
		}
		return fmt.Errorf("failed to update leave status: %w", err)
	}

	return nil
}

// ListByPersonnel implements attendance.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) ListByPersonnel(ctx context.Context, ptype personnel.Type, personnelID string) ([]attendance.LeaveRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE personnel_id = $1
		ORDER BY start_date DESC
	`, leaveRecordColumns, leaveTable(ptype))

	return r.queryLeaveRecords(ctx, query, personnelID)
}

// ListPending implements attendance.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) ListPending(ctx context.Context, ptype personnel.Type) ([]attendance.LeaveRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE status = $1
		ORDER BY start_date
	`, leaveRecordColumns, leaveTable(ptype))

	return r.queryLeaveRecords(ctx, query, attendance.ApprovalPending)
}

func (r *leaveRecordRepositoryImpl) queryLeaveRecords(ctx context.Context, query string, arg interface{}) ([]attendance.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []attendance.LeaveRecord
	for rows.Next() {
		var rec attendance.LeaveRecord
		err := rows.Scan(
			&rec.ID, &rec.PersonnelID, &rec.StartDate, &rec.EndDate, &rec.Reason,
			&rec.LeaveType, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
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
