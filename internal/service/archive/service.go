package archive

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ptcpms/personnel-backend-go/internal/domain/archive"
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
)

// Service moves personnel between the live and archive tables. The move is
// two sequential writes, not a transaction: copy first, then delete the
// original. When the delete fails after the copy landed, the copy is removed
// again so a record never exists live and archived at once. Historical
// attendance and leave rows are never copied or deleted by either direction.
type Service struct {
	archiveRepo   archive.Repository
	folderRepo    archive.FolderRepository
	personnelRepo personnel.Repository
}

func NewArchiveService(
	archiveRepo archive.Repository,
	folderRepo archive.FolderRepository,
	personnelRepo personnel.Repository,
) *Service {
	return &Service{
		archiveRepo:   archiveRepo,
		folderRepo:    folderRepo,
		personnelRepo: personnelRepo,
	}
}

// ArchiveOne archives a single personnel record.
func (s *Service) ArchiveOne(ctx context.Context, ptype personnel.Type, personnelID string, actorID string, folderID *string) error {
	_, err := s.archiveBatch(ctx, ptype, []string{personnelID}, actorID, folderID, true)
	return err
}

// ArchiveMany archives a batch. Ids that match no live row are skipped; the
// whole batch fails with NotFound only when nothing matched at all.
func (s *Service) ArchiveMany(ctx context.Context, req archive.ArchiveRequest, actorID string) (archive.ArchiveResponse, error) {
	if err := req.Validate(); err != nil {
		return archive.ArchiveResponse{}, err
	}

	count, err := s.archiveBatch(ctx, personnel.Type(req.PersonnelType), req.PersonnelIDs, actorID, req.FolderID, false)
	if err != nil {
		return archive.ArchiveResponse{}, err
	}

	return archive.ArchiveResponse{ArchivedCount: count, FolderID: req.FolderID}, nil
}

func (s *Service) archiveBatch(ctx context.Context, ptype personnel.Type, ids []string, actorID string, folderID *string, single bool) (int, error) {
	if actorID == "" {
		return 0, fmt.Errorf("archival requires an acting user")
	}

	if folderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *folderID); err != nil {
			return 0, err
		}
	}

	rows, err := s.personnelRepo.GetByIDs(ctx, ptype, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch personnel for archival: %w", err)
	}
	if len(rows) == 0 {
		if single {
			return 0, personnel.ErrPersonnelNotFound
		}
		return 0, archive.ErrNoPersonnelMatched
	}

	now := time.Now()
	archived := make([]archive.ArchivedPersonnel, 0, len(rows))
	archivedIDs := make([]string, 0, len(rows))
	for _, p := range rows {
		archived = append(archived, archive.ArchivedPersonnel{
			Personnel:  p,
			ArchivedAt: now,
			ArchivedBy: actorID,
			FolderID:   folderID,
		})
		archivedIDs = append(archivedIDs, p.ID)
	}

	if err := s.archiveRepo.InsertMany(ctx, ptype, archived); err != nil {
		// A partial copy leaves some rows in both tables. Remove whatever
		// landed before reporting the failure; the live rows are untouched.
		slog.Error("archive copy step failed, rolling back partial copy",
			"personnel_type", ptype,
			"ids", archivedIDs,
			"error", err,
		)
		if rbErr := s.archiveRepo.DeleteMany(ctx, ptype, archivedIDs); rbErr != nil {
			slog.Error("archive rollback failed, duplicate live+archived rows remain",
				"personnel_type", ptype,
				"ids", archivedIDs,
				"error", rbErr,
			)
		}
		return 0, fmt.Errorf("failed to copy personnel into archive: %w", err)
	}

	deleted, err := s.personnelRepo.DeleteMany(ctx, ptype, archivedIDs)
	if err != nil {
		// The copy landed but the originals are still live. Remove the copy
		// so the batch leaves no duplicate state behind.
		slog.Error("archive delete step failed, rolling back archive copy",
			"personnel_type", ptype,
			"ids", archivedIDs,
			"error", err,
		)
		if rbErr := s.archiveRepo.DeleteMany(ctx, ptype, archivedIDs); rbErr != nil {
			slog.Error("archive rollback failed, duplicate live+archived rows remain",
				"personnel_type", ptype,
				"ids", archivedIDs,
				"error", rbErr,
			)
		}
		return 0, fmt.Errorf("failed to remove personnel from live table: %w", err)
	}

	slog.Info("personnel archived",
		"personnel_type", ptype,
		"count", deleted,
		"actor_id", actorID,
	)

	return len(archivedIDs), nil
}

// UnarchiveOne restores an archived record into the live table, keeping the
// original id so historical attendance and leave rows reattach, then removes
// the archive row. Archive-only fields are stripped in the process.
func (s *Service) UnarchiveOne(ctx context.Context, ptype personnel.Type, archivedID string) (personnel.Personnel, error) {
	if !ptype.Valid() {
		return personnel.Personnel{}, personnel.ErrInvalidPersonnelType
	}

	rec, err := s.archiveRepo.GetByID(ctx, ptype, archivedID)
	if err != nil {
		return personnel.Personnel{}, err
	}

	restored := rec.Personnel

	if err := s.personnelRepo.Restore(ctx, restored); err != nil {
		return personnel.Personnel{}, fmt.Errorf("failed to restore personnel: %w", err)
	}

	if err := s.archiveRepo.Delete(ctx, ptype, archivedID); err != nil {
		// Mirror the archive direction: take the restored row back out
		// rather than leave the record in both tables.
		slog.Error("unarchive delete step failed, rolling back restore",
			"personnel_type", ptype,
			"id", archivedID,
			"error", err,
		)
		if rbErr := s.personnelRepo.Delete(ctx, ptype, restored.ID); rbErr != nil {
			slog.Error("unarchive rollback failed, duplicate live+archived rows remain",
				"personnel_type", ptype,
				"id", archivedID,
				"error", rbErr,
			)
		}
		return personnel.Personnel{}, fmt.Errorf("failed to remove archive row: %w", err)
	}

	return restored, nil
}

// ListArchived returns archive rows, optionally narrowed to one folder.
func (s *Service) ListArchived(ctx context.Context, ptype personnel.Type, folderID *string) ([]archive.ArchivedPersonnel, error) {
	if !ptype.Valid() {
		return nil, personnel.ErrInvalidPersonnelType
	}
	return s.archiveRepo.List(ctx, ptype, folderID)
}

// CreateFolder creates an archive folder.
func (s *Service) CreateFolder(ctx context.Context, req archive.CreateFolderRequest, actorID string) (archive.Folder, error) {
	if err := req.Validate(); err != nil {
		return archive.Folder{}, err
	}

	folder := archive.Folder{
		ID:          uuid.NewString(),
		FolderName:  req.FolderName,
		Description: req.Description,
		CreatedBy:   actorID,
	}

	created, err := s.folderRepo.Create(ctx, folder)
	if err != nil {
		return archive.Folder{}, err
	}

	return created, nil
}

// ListFolders returns all folders with derived member counts.
func (s *Service) ListFolders(ctx context.Context) ([]archive.Folder, error) {
	return s.folderRepo.List(ctx)
}

// DeleteFolder removes a folder after resolving its members: they move to
// targetFolderID when given, otherwise they are deleted outright. Members
// are always resolved before the folder row goes away so no archive row is
// left pointing at a folder that no longer exists.
func (s *Service) DeleteFolder(ctx context.Context, folderID string, targetFolderID *string) error {
	if _, err := s.folderRepo.GetByID(ctx, folderID); err != nil {
		return err
	}

	if targetFolderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *targetFolderID); err != nil {
			return err
		}
		if err := s.archiveRepo.ReassignFolder(ctx, folderID, *targetFolderID); err != nil {
			return err
		}
	} else {
		if err := s.archiveRepo.DeleteByFolder(ctx, folderID); err != nil {
			return err
		}
	}

	return s.folderRepo.Delete(ctx, folderID)
}
