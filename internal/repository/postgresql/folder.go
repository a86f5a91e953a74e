package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ptcpms/personnel-backend-go/internal/domain/archive"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/database"
)

type folderRepositoryImpl struct {
	db *database.DB
}

func NewFolderRepository(db *database.DB) archive.FolderRepository {
	return &folderRepositoryImpl{db: db}
}

// Create implements archive.FolderRepository.
func (r *folderRepositoryImpl) Create(ctx context.Context, folder archive.Folder) (archive.Folder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO archive_folders (id, folder_name, description, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		folder.ID, folder.FolderName, folder.Description, folder.CreatedBy,
	).Scan(&folder.CreatedAt)
	if err != nil {
		return archive.Folder{}, fmt.Errorf("failed to create archive folder: %w", err)
	}

	return folder, nil
}

// GetByID implements archive.FolderRepository.
func (r *folderRepositoryImpl) GetByID(ctx context.Context, id string) (archive.Folder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.folder_name, f.description, f.created_by, f.created_at,
			   (SELECT COUNT(*) FROM archived_staff WHERE folder_id = f.id) +
			   (SELECT COUNT(*) FROM archived_trainees WHERE folder_id = f.id)
		FROM archive_folders f
		WHERE f.id = $1
	`

	var folder archive.Folder
	err := q.QueryRow(ctx, query, id).Scan(
		&folder.ID, &folder.FolderName, &folder.Description,
		&folder.CreatedBy, &folder.CreatedAt, &folder.ItemCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return archive.Folder{}, archive.ErrFolderNotFound
		}
		return archive.Folder{}, fmt.Errorf("failed to get archive folder: %w", err)
	}

	return folder, nil
}

// List implements archive.FolderRepository.
func (r *folderRepositoryImpl) List(ctx context.Context) ([]archive.Folder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.folder_name, f.description, f.created_by, f.created_at,
			   (SELECT COUNT(*) FROM archived_staff WHERE folder_id = f.id) +
			   (SELECT COUNT(*) FROM archived_trainees WHERE folder_id = f.id)
		FROM archive_folders f
		ORDER BY f.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive folders: %w", err)
	}
	defer rows.Close()

	var folders []archive.Folder
	for rows.Next() {
		var folder archive.Folder
		err := rows.Scan(
			&folder.ID, &folder.FolderName, &folder.Description,
			&folder.CreatedBy, &folder.CreatedAt, &folder.ItemCount,
		)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return folders, nil
}

// Delete implements archive.FolderRepository.
func (r *folderRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM archive_folders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete archive folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return archive.ErrFolderNotFound
	}

	return nil
}
