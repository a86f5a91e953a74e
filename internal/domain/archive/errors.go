package archive

import "errors"

var (
	ErrArchivedRecordNotFound = errors.New("archived record not found")
	ErrFolderNotFound         = errors.New("archive folder not found")
	ErrNoPersonnelMatched     = errors.New("no personnel matched the given ids")
)
