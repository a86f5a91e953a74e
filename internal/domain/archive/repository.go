package archive

import (
	"context"

	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
)

// Repository - interface over the per-type archive tables.
type Repository interface {
	Insert(ctx context.Context, ptype personnel.Type, rec ArchivedPersonnel) error
	InsertMany(ctx context.Context, ptype personnel.Type, recs []ArchivedPersonnel) error
	GetByID(ctx context.Context, ptype personnel.Type, id string) (ArchivedPersonnel, error)
	List(ctx context.Context, ptype personnel.Type, folderID *string) ([]ArchivedPersonnel, error)
	Delete(ctx context.Context, ptype personnel.Type, id string) error
	DeleteMany(ctx context.Context, ptype personnel.Type, ids []string) error
	// Folder membership operations span both archive tables.
	ReassignFolder(ctx context.Context, folderID, targetFolderID string) error
	DeleteByFolder(ctx context.Context, folderID string) error
}

// FolderRepository - interface for the archive_folders table.
type FolderRepository interface {
	Create(ctx context.Context, folder Folder) (Folder, error)
	GetByID(ctx context.Context, id string) (Folder, error)
	List(ctx context.Context) ([]Folder, error)
	Delete(ctx context.Context, id string) error
}
