package archive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcpms/personnel-backend-go/internal/pkg/validator"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestArchiveRequestValidate(t *testing.T) {
	valid := ArchiveRequest{
		PersonnelIDs:  []string{"p-1", "p-2"},
		PersonnelType: "trainee",
	}
	assert.NoError(t, valid.Validate())

	t.Run("requires at least one id", func(t *testing.T) {
		req := valid
		req.PersonnelIDs = nil
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "personnel_ids")
	})

	t.Run("rejects blank ids in the batch", func(t *testing.T) {
		req := valid
		req.PersonnelIDs = []string{"p-1", " "}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "personnel_ids")
	})

	t.Run("rejects unknown personnel type", func(t *testing.T) {
		req := valid
		req.PersonnelType = "recruit"
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "personnel_type")
	})
}

func TestCreateFolderRequestValidate(t *testing.T) {
	valid := CreateFolderRequest{FolderName: "Batch 2024 pass-outs"}
	assert.NoError(t, valid.Validate())

	t.Run("name is required", func(t *testing.T) {
		req := CreateFolderRequest{FolderName: "   "}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "folder_name")
	})

	t.Run("name length is capped", func(t *testing.T) {
		req := CreateFolderRequest{FolderName: strings.Repeat("x", 121)}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "folder_name")
	})
}
