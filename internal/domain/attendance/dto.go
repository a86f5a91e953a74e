package attendance

import (
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type SubmitDayStatusRequest struct {
	PersonnelID   string `json:"personnel_id"`
	PersonnelType string `json:"personnel_type"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`
}

func (r *SubmitDayStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}

	if !personnel.Type(r.PersonnelType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_type",
			Message: "personnel_type must be staff or trainee",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognized attendance status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitLeaveRangeRequest struct {
	PersonnelID   string `json:"personnel_id"`
	PersonnelType string `json:"personnel_type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason"`
	LeaveType     string `json:"leave_type,omitempty"`
}

func (r *SubmitLeaveRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}

	if !personnel.Type(r.PersonnelType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_type",
			Message: "personnel_type must be staff or trainee",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.LeaveType != "" && !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of CL, EL, ML, maternity, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateApprovalRequest struct {
	RecordID       string `json:"record_id"`
	RecordType     string `json:"record_type"`
	PersonnelType  string `json:"personnel_type"`
	ApprovalStatus string `json:"approval_status"`
}

func (r *UpdateApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if !RecordType(r.RecordType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "record_type",
			Message: "record_type must be absence or leave",
		})
	}

	if !personnel.Type(r.PersonnelType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_type",
			Message: "personnel_type must be staff or trainee",
		})
	}

	// Only a final decision comes through this boundary; pending is the
	// initial state, never a target.
	if r.ApprovalStatus != string(ApprovalApproved) && r.ApprovalStatus != string(ApprovalRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "approval_status",
			Message: "approval_status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
