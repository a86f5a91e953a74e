package archive

import (
	"time"

	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
)

// ArchivedPersonnel is a live row copied verbatim into the archive table,
// tagged with who archived it and when. The embedded Personnel keeps its
// original ID so historical attendance and leave rows stay resolvable and a
// later unarchive restores the exact same identity.
type ArchivedPersonnel struct {
	personnel.Personnel

	ArchivedAt time.Time
	ArchivedBy string
	FolderID   *string
}

// Folder groups archived personnel for browsing. ItemCount is derived at
// read time, never stored.
type Folder struct {
	ID          string
	FolderName  string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	ItemCount   int64
}
