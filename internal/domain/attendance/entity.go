package attendance

import "time"

// Status is the day-level attendance status. The set is closed; anything not
// listed here is rejected at the boundary rather than stored as free text.
type Status string

const (
	StatusAbsent       Status = "absent"
	StatusDuty         Status = "duty"
	StatusTraining     Status = "training"
	StatusOnLeave      Status = "on_leave"
	StatusReturnToUnit Status = "return_to_unit"
	StatusSuspension   Status = "suspension"
	StatusResignation  Status = "resignation"
	StatusTermination  Status = "termination"
	StatusOther        Status = "other"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAbsent, StatusDuty, StatusTraining, StatusOnLeave,
		StatusReturnToUnit, StatusSuspension, StatusResignation,
		StatusTermination, StatusOther:
		return true
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (a ApprovalStatus) Valid() bool {
	return a == ApprovalApproved || a == ApprovalPending || a == ApprovalRejected
}

// RecordType distinguishes the two tables an approval decision can target.
type RecordType string

const (
	RecordTypeAbsence RecordType = "absence"
	RecordTypeLeave   RecordType = "leave"
)

func (r RecordType) Valid() bool {
	return r == RecordTypeAbsence || r == RecordTypeLeave
}

type LeaveType string

const (
	LeaveTypeCasual    LeaveType = "CL"
	LeaveTypeEarned    LeaveType = "EL"
	LeaveTypeMedical   LeaveType = "ML"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypeOther     LeaveType = "other"
)

func (l LeaveType) Valid() bool {
	switch l {
	case LeaveTypeCasual, LeaveTypeEarned, LeaveTypeMedical, LeaveTypeMaternity, LeaveTypeOther:
		return true
	}
	return false
}

// DayRecord is a single-day attendance row. At most one row exists per
// (personnel, date); submission is an upsert keyed on that pair.
type DayRecord struct {
	ID             string
	PersonnelID    string
	Date           time.Time
	Status         Status
	Reason         string
	ApprovalStatus ApprovalStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LeaveRecord is a date-range leave request. EndDate never precedes
// StartDate; the boundary rejects such ranges before any storage call.
type LeaveRecord struct {
	ID          string
	PersonnelID string
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	LeaveType   LeaveType
	Status      ApprovalStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
