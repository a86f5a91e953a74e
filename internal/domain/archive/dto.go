package archive

import (
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/validator"
)

type ArchiveRequest struct {
	PersonnelIDs  []string `json:"personnel_ids"`
	PersonnelType string   `json:"personnel_type"`
	FolderID      *string  `json:"folder_id,omitempty"`
}

func (r *ArchiveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.PersonnelIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_ids",
			Message: "at least one personnel_id is required",
		})
	}
	for _, id := range r.PersonnelIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "personnel_ids",
				Message: "personnel_ids must not contain empty values",
			})
			break
		}
	}

	if !personnel.Type(r.PersonnelType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_type",
			Message: "personnel_type must be staff or trainee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateFolderRequest struct {
	FolderName  string `json:"folder_name"`
	Description string `json:"description"`
}

func (r *CreateFolderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FolderName) {
		errs = append(errs, validator.ValidationError{
			Field:   "folder_name",
			Message: "folder_name is required",
		})
	}
	if len(r.FolderName) > 120 {
		errs = append(errs, validator.ValidationError{
			Field:   "folder_name",
			Message: "folder_name must not exceed 120 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ArchiveResponse struct {
	ArchivedCount int     `json:"archived_count"`
	FolderID      *string `json:"folder_id,omitempty"`
}
