package attendance

import (
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

func TestSubmitDayStatusRequestValidate(t *testing.T) {
	valid := SubmitDayStatusRequest{
		PersonnelID:   "p-1",
		PersonnelType: "trainee",
		Date:          "2026-03-02",
		Status:        "absent",
	}
	assert.NoError(t, valid.Validate())

	t.Run("rejects unknown status", func(t *testing.T) {
		req := valid
		req.Status = "present-ish"
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "status")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		req := valid
		req.Date = "02-03-2026"
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "date")
	})

	t.Run("rejects unrecognized personnel type", func(t *testing.T) {
		req := valid
		req.PersonnelType = "cadet"
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "personnel_type")
	})

	t.Run("requires personnel id", func(t *testing.T) {
		req := valid
		req.PersonnelID = "  "
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "personnel_id")
	})
}

func TestSubmitLeaveRangeRequestValidate(t *testing.T) {
	valid := SubmitLeaveRangeRequest{
		PersonnelID:   "p-1",
		PersonnelType: "staff",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-04",
		Reason:        "family function",
		LeaveType:     "CL",
	}
	assert.NoError(t, valid.Validate())

	t.Run("single day range is allowed", func(t *testing.T) {
		req := valid
		req.EndDate = req.StartDate
		assert.NoError(t, req.Validate())
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		req := valid
		req.EndDate = "2026-03-01"
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "end_date")
	})

	t.Run("leave type is optional", func(t *testing.T) {
		req := valid
		req.LeaveType = ""
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown leave type is rejected", func(t *testing.T) {
		req := valid
		req.LeaveType = "LWP"
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "leave_type")
	})
}

func TestUpdateApprovalRequestValidate(t *testing.T) {
	valid := UpdateApprovalRequest{
		RecordID:       "r-1",
		RecordType:     "leave",
		PersonnelType:  "trainee",
		ApprovalStatus: "approved",
	}
	assert.NoError(t, valid.Validate())

	t.Run("pending is not a decision", func(t *testing.T) {
		req := valid
		req.ApprovalStatus = "pending"
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "approval_status")
	})

	t.Run("record type must be absence or leave", func(t *testing.T) {
		req := valid
		req.RecordType = "vacation"
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "record_type")
	})
}
