package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/database"
)

const personnelColumns = `id, pno, name, father_name, rank, mobile_number, education,
	date_of_birth, date_of_joining, blood_group, nominee, home_address,
	current_posting_district, photo_url, toli_no, chest_no, arrival_date,
	departure_date, class_no, class_subject, created_at, updated_at`

type personnelRepositoryImpl struct {
	db *database.DB
}

func NewPersonnelRepository(db *database.DB) personnel.Repository {
	return &personnelRepositoryImpl{db: db}
}

func scanPersonnel(row pgx.Row, ptype personnel.Type) (personnel.Personnel, error) {
	var p personnel.Personnel
	err := row.Scan(
		&p.ID, &p.PNO, &p.Name, &p.FatherName, &p.Rank, &p.MobileNumber,
		&p.Education, &p.DateOfBirth, &p.DateOfJoining, &p.BloodGroup,
		&p.Nominee, &p.HomeAddress, &p.CurrentPostingDistrict, &p.PhotoURL,
		&p.ToliNo, &p.ChestNo, &p.ArrivalDate, &p.DepartureDate,
		&p.ClassNo, &p.ClassSubject, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return personnel.Personnel{}, err
	}
	p.Type = ptype
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements personnel.Repository.
func (r *personnelRepositoryImpl) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, pno, name, father_name, rank, mobile_number, education,
			date_of_birth, date_of_joining, blood_group, nominee, home_address,
			current_posting_district, photo_url, toli_no, chest_no, arrival_date,
			departure_date, class_no, class_subject
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		) RETURNING created_at, updated_at
	`, personnelTable(p.Type))

	err := q.QueryRow(ctx, query,
		p.ID, p.PNO, p.Name, p.FatherName, p.Rank, p.MobileNumber, p.Education,
		p.DateOfBirth, p.DateOfJoining, p.BloodGroup, p.Nominee, p.HomeAddress,
		p.CurrentPostingDistrict, p.PhotoURL, p.ToliNo, p.ChestNo, p.ArrivalDate,
		p.DepartureDate, p.ClassNo, p.ClassSubject,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return personnel.Personnel{}, personnel.ErrPNOExists
		}
		return personnel.Personnel{}, fmt.Errorf("failed to create personnel: %w", err)
	}

	return p, nil
}

// Restore implements personnel.Repository. The row keeps the id it had
// before archival, together with its original timestamps where known.
func (r *personnelRepositoryImpl) Restore(ctx context.Context, p personnel.Personnel) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, pno, name, father_name, rank, mobile_number, education,
			date_of_birth, date_of_joining, blood_group, nominee, home_address,
			current_posting_district, photo_url, toli_no, chest_no, arrival_date,
			departure_date, class_no, class_subject, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
	`, personnelTable(p.Type))

	_, err := q.Exec(ctx, query,
		p.ID, p.PNO, p.Name, p.FatherName, p.Rank, p.MobileNumber, p.Education,
		p.DateOfBirth, p.DateOfJoining, p.BloodGroup, p.Nominee, p.HomeAddress,
		p.CurrentPostingDistrict, p.PhotoURL, p.ToliNo, p.ChestNo, p.ArrivalDate,
		p.DepartureDate, p.ClassNo, p.ClassSubject, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return personnel.ErrPNOExists
		}
		return fmt.Errorf("failed to restore personnel: %w", err)
	}

	return nil
}

// GetByID implements personnel.Repository.
func (r *personnelRepositoryImpl) GetByID(ctx context.Context, ptype personnel.Type, id string) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, personnelColumns, personnelTable(ptype))

	p, err := scanPersonnel(q.QueryRow(ctx, query, id), ptype)
	if err != nil {
		if err == pgx.ErrNoRows {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, fmt.Errorf("failed to get personnel by id: %w", err)
	}

	return p, nil
}

// GetByIDs implements personnel.Repository.
func (r *personnelRepositoryImpl) GetByIDs(ctx context.Context, ptype personnel.Type, ids []string) ([]personnel.Personnel, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ANY($1)`, personnelColumns, personnelTable(ptype))

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel by ids: %w", err)
	}
	defer rows.Close()

	var result []personnel.Personnel
	for rows.Next() {
		p, err := scanPersonnel(rows, ptype)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetByPNO implements personnel.Repository.
func (r *personnelRepositoryImpl) GetByPNO(ctx context.Context, ptype personnel.Type, pno string) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE pno = $1`, personnelColumns, personnelTable(ptype))

	p, err := scanPersonnel(q.QueryRow(ctx, query, pno), ptype)
	if err != nil {
		if err == pgx.ErrNoRows {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, fmt.Errorf("failed to get personnel by pno: %w", err)
	}

	return p, nil
}

// List implements personnel.Repository.
func (r *personnelRepositoryImpl) List(ctx context.Context, ptype personnel.Type) ([]personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY name`, personnelColumns, personnelTable(ptype))

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()

	var result []personnel.Personnel
	for rows.Next() {
		p, err := scanPersonnel(rows, ptype)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Update implements personnel.Repository.
func (r *personnelRepositoryImpl) Update(ctx context.Context, ptype personnel.Type, id string, req personnel.UpdatePersonnelRequest) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s SET
			name = $1, father_name = $2, rank = $3, mobile_number = $4,
			education = $5, date_of_birth = $6, date_of_joining = $7,
			blood_group = $8, nominee = $9, home_address = $10,
			current_posting_district = $11, photo_url = $12, toli_no = $13,
			chest_no = $14, arrival_date = $15, departure_date = $16,
			class_no = $17, class_subject = $18, updated_at = NOW()
		WHERE id = $19
		RETURNING id
	`, personnelTable(ptype))

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Name, req.FatherName, req.Rank, req.MobileNumber,
		req.Education, req.DateOfBirth, req.DateOfJoining,
		req.BloodGroup, req.Nominee, req.HomeAddress,
		req.CurrentPostingDistrict, req.PhotoURL, req.ToliNo,
		req.ChestNo, req.ArrivalDate, req.DepartureDate,
		req.ClassNo, req.ClassSubject, id,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return personnel.ErrPersonnelNotFound
		}
		return fmt.Errorf("failed to update personnel: %w", err)
	}

	return nil
}

// Delete implements personnel.Repository.
func (r *personnelRepositoryImpl) Delete(ctx context.Context, ptype personnel.Type, id string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, personnelTable(ptype))

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete personnel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}

	return nil
}

// DeleteMany implements personnel.Repository.
func (r *personnelRepositoryImpl) DeleteMany(ctx context.Context, ptype personnel.Type, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ANY($1)`, personnelTable(ptype))

	tag, err := q.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete personnel batch: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ExistsByPNO implements personnel.Repository.
func (r *personnelRepositoryImpl) ExistsByPNO(ctx context.Context, ptype personnel.Type, pno string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE pno = $1)`, personnelTable(ptype))

	var exists bool
	if err := q.QueryRow(ctx, query, pno).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
