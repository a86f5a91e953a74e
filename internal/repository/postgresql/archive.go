package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ptcpms/personnel-backend-go/internal/domain/archive"
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/database"
)

// The archive tables predate the live schema rename: the trainee arrival
// date is stored as original_arrival_date there. The mapping back to
// arrival_date happens here so the rest of the code never sees the alias.
const archiveColumns = `id, pno, name, father_name, rank, mobile_number, education,
	date_of_birth, date_of_joining, blood_group, nominee, home_address,
	current_posting_district, photo_url, toli_no, chest_no, original_arrival_date,
	departure_date, class_no, class_subject, created_at, archived_at, archived_by, folder_id`

type archiveRepositoryImpl struct {
	db *database.DB
}

func NewArchiveRepository(db *database.DB) archive.Repository {
	return &archiveRepositoryImpl{db: db}
}

func scanArchived(row pgx.Row, ptype personnel.Type) (archive.ArchivedPersonnel, error) {
	var rec archive.ArchivedPersonnel
	err := row.Scan(
		&rec.ID, &rec.PNO, &rec.Name, &rec.FatherName, &rec.Rank, &rec.MobileNumber,
		&rec.Education, &rec.DateOfBirth, &rec.DateOfJoining, &rec.BloodGroup,
		&rec.Nominee, &rec.HomeAddress, &rec.CurrentPostingDistrict, &rec.PhotoURL,
		&rec.ToliNo, &rec.ChestNo, &rec.ArrivalDate, &rec.DepartureDate,
		&rec.ClassNo, &rec.ClassSubject, &rec.CreatedAt,
		&rec.ArchivedAt, &rec.ArchivedBy, &rec.FolderID,
	)
	if err != nil {
		return archive.ArchivedPersonnel{}, err
	}
	rec.Type = ptype
	return rec, nil
}

// Insert implements archive.Repository.
func (r *archiveRepositoryImpl) Insert(ctx context.Context, ptype personnel.Type, rec archive.ArchivedPersonnel) error {
	return r.InsertMany(ctx, ptype, []archive.ArchivedPersonnel{rec})
}

// InsertMany implements archive.Repository.
func (r *archiveRepositoryImpl) InsertMany(ctx context.Context, ptype personnel.Type, recs []archive.ArchivedPersonnel) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, pno, name, father_name, rank, mobile_number, education,
			date_of_birth, date_of_joining, blood_group, nominee, home_address,
			current_posting_district, photo_url, toli_no, chest_no, original_arrival_date,
			departure_date, class_no, class_subject, created_at, archived_at, archived_by, folder_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
	`, archiveTable(ptype))

	for _, rec := range recs {
		_, err := q.Exec(ctx, query,
			rec.ID, rec.PNO, rec.Name, rec.FatherName, rec.Rank, rec.MobileNumber,
			rec.Education, rec.DateOfBirth, rec.DateOfJoining, rec.BloodGroup,
			rec.Nominee, rec.HomeAddress, rec.CurrentPostingDistrict, rec.PhotoURL,
			rec.ToliNo, rec.ChestNo, rec.ArrivalDate, rec.DepartureDate,
			rec.ClassNo, rec.ClassSubject, rec.CreatedAt,
			rec.ArchivedAt, rec.ArchivedBy, rec.FolderID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert archive row for %s: %w", rec.ID, err)
		}
	}

	return nil
}

// GetByID implements archive.Repository.
func (r *archiveRepositoryImpl) GetByID(ctx context.Context, ptype personnel.Type, id string) (archive.ArchivedPersonnel, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, archiveColumns, archiveTable(ptype))

	rec, err := scanArchived(q.QueryRow(ctx, query, id), ptype)
	if err != nil {
		if err == pgx.ErrNoRows {
			return archive.ArchivedPersonnel{}, archive.ErrArchivedRecordNotFound
		}
		return archive.ArchivedPersonnel{}, fmt.Errorf("failed to get archived record: %w", err)
	}

	return rec, nil
}

// List implements archive.Repository.
func (r *archiveRepositoryImpl) List(ctx context.Context, ptype personnel.Type, folderID *string) ([]archive.ArchivedPersonnel, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s`, archiveColumns, archiveTable(ptype))
	args := []interface{}{}
	if folderID != nil {
		query += ` WHERE folder_id = $1`
		args = append(args, *folderID)
	}
	query += ` ORDER BY archived_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived records: %w", err)
	}
	defer rows.Close()

	var records []archive.ArchivedPersonnel
	for rows.Next() {
		rec, err := scanArchived(rows, ptype)
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

// Delete implements archive.Repository.
func (r *archiveRepositoryImpl) Delete(ctx context.Context, ptype personnel.Type, id string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, archiveTable(ptype))

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete archived record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return archive.ErrArchivedRecordNotFound
	}

	return nil
}

// DeleteMany implements archive.Repository.
func (r *archiveRepositoryImpl) DeleteMany(ctx context.Context, ptype personnel.Type, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ANY($1)`, archiveTable(ptype))

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to delete archived records: %w", err)
	}

	return nil
}

// ReassignFolder implements archive.Repository. Both archive tables are
// touched; folder membership is not split by personnel type.
func (r *archiveRepositoryImpl) ReassignFolder(ctx context.Context, folderID, targetFolderID string) error {
	q := GetQuerier(ctx, r.db)

	for _, ptype := range []personnel.Type{personnel.TypeStaff, personnel.TypeTrainee} {
		query := fmt.Sprintf(`UPDATE %s SET folder_id = $1 WHERE folder_id = $2`, archiveTable(ptype))
		if _, err := q.Exec(ctx, query, targetFolderID, folderID); err != nil {
			return fmt.Errorf("failed to reassign folder members in %s: %w", archiveTable(ptype), err)
		}
	}

	return nil
}

// DeleteByFolder implements archive.Repository.
func (r *archiveRepositoryImpl) DeleteByFolder(ctx context.Context, folderID string) error {
	q := GetQuerier(ctx, r.db)

	for _, ptype := range []personnel.Type{personnel.TypeStaff, personnel.TypeTrainee} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE folder_id = $1`, archiveTable(ptype))
		if _, err := q.Exec(ctx, query, folderID); err != nil {
			return fmt.Errorf("failed to delete folder members in %s: %w", archiveTable(ptype), err)
		}
	}

	return nil
}
