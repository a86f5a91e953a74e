package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ptcpms/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
)

// Service owns the day-status and leave-range tables. Submissions upsert on
// (personnel, date) so repeated marking of the same day converges to a
// single row, and approving a leave range materializes one on_leave day row
// per covered date.
type Service struct {
	dayRepo       attendance.DayRecordRepository
	leaveRepo     attendance.LeaveRecordRepository
	personnelRepo personnel.Repository
}

func NewAttendanceService(
	dayRepo attendance.DayRecordRepository,
	leaveRepo attendance.LeaveRecordRepository,
	personnelRepo personnel.Repository,
) *Service {
	return &Service{
		dayRepo:       dayRepo,
		leaveRepo:     leaveRepo,
		personnelRepo: personnelRepo,
	}
}

// SubmitDayStatus records a status for one person on one day. An existing
// row for the (personnel, date) pair is updated in place; otherwise a new
// row is inserted. The approval state is always recomputed from the status.
func (s *Service) SubmitDayStatus(ctx context.Context, req attendance.SubmitDayStatusRequest) (attendance.DayRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecord{}, err
	}

	ptype := personnel.Type(req.PersonnelType)
	date, _ := time.Parse("2006-01-02", req.Date)

	if _, err := s.personnelRepo.GetByID(ctx, ptype, req.PersonnelID); err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to look up personnel: %w", err)
	}

	status := attendance.Status(req.Status)
	return s.upsertDayRecord(ctx, ptype, req.PersonnelID, date, status, req.Reason, attendance.ApprovalStatusFor(status))
}

func (s *Service) upsertDayRecord(ctx context.Context, ptype personnel.Type, personnelID string, date time.Time, status attendance.Status, reason string, approval attendance.ApprovalStatus) (attendance.DayRecord, error) {
	existing, err := s.dayRepo.GetByPersonnelAndDate(ctx, ptype, personnelID, date)
	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to check existing attendance record: %w", err)
	}

	if existing != nil {
		if err := s.dayRepo.Update(ctx, ptype, existing.ID, status, reason, approval); err != nil {
			return attendance.DayRecord{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		existing.Status = status
		existing.Reason = reason
		existing.ApprovalStatus = approval
		return *existing, nil
	}

	rec := attendance.DayRecord{
		ID:             uuid.NewString(),
		PersonnelID:    personnelID,
		Date:           date,
		Status:         status,
		Reason:         reason,
		ApprovalStatus: approval,
	}

	created, err := s.dayRepo.Create(ctx, ptype, rec)
	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// SubmitLeaveRange files a leave request for a date range. A pre-existing
// range for the same (personnel, start_date) is updated and pushed back to
// pending; new ranges start pending. Leave always requires approval.
func (s *Service) SubmitLeaveRange(ctx context.Context, req attendance.SubmitLeaveRangeRequest) (attendance.LeaveRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.LeaveRecord{}, err
	}

	ptype := personnel.Type(req.PersonnelType)
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	if _, err := s.personnelRepo.GetByID(ctx, ptype, req.PersonnelID); err != nil {
		return attendance.LeaveRecord{}, fmt.Errorf("failed to look up personnel: %w", err)
	}

	leaveType := attendance.LeaveType(req.LeaveType)
	if req.LeaveType == "" {
		leaveType = attendance.LeaveTypeOther
	}

	existing, err := s.leaveRepo.GetByPersonnelAndStartDate(ctx, ptype, req.PersonnelID, startDate)
	if err != nil {
		return attendance.LeaveRecord{}, fmt.Errorf("failed to check existing leave record: %w", err)
	}

	if existing != nil {
		if err := s.leaveRepo.Update(ctx, ptype, existing.ID, endDate, req.Reason, leaveType, attendance.ApprovalPending); err != nil {
			return attendance.LeaveRecord{}, fmt.Errorf("failed to update leave record: %w", err)
		}
		existing.EndDate = endDate
		existing.Reason = req.Reason
		existing.LeaveType = leaveType
		existing.Status = attendance.ApprovalPending
		return *existing, nil
	}

	rec := attendance.LeaveRecord{
		ID:          uuid.NewString(),
		PersonnelID: req.PersonnelID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		LeaveType:   leaveType,
		Status:      attendance.ApprovalPending,
	}

	created, err := s.leaveRepo.Create(ctx, ptype, rec)
	if err != nil {
		return attendance.LeaveRecord{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return created, nil
}

// UpdateApprovalStatus applies an approve/reject decision to a day record
// or a leave range. Approving a leave range triggers reconciliation into
// per-day rows; a reconciliation failure is logged with the failing step
// and does not revert the decision already written.
func (s *Service) UpdateApprovalStatus(ctx context.Context, req attendance.UpdateApprovalRequest, actorID string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ptype := personnel.Type(req.PersonnelType)
	newStatus := attendance.ApprovalStatus(req.ApprovalStatus)

	switch attendance.RecordType(req.RecordType) {
	case attendance.RecordTypeAbsence:
		if err := s.dayRepo.UpdateApproval(ctx, ptype, req.RecordID, newStatus); err != nil {
			return err
		}

	case attendance.RecordTypeLeave:
		rec, err := s.leaveRepo.GetByID(ctx, ptype, req.RecordID)
		if err != nil {
			return err
		}

		if err := s.leaveRepo.UpdateStatus(ctx, ptype, rec.ID, newStatus); err != nil {
			return err
		}

		if newStatus == attendance.ApprovalApproved {
			rec.Status = newStatus
			s.reconcileApprovedLeave(ctx, ptype, rec)
		}

	default:
		return attendance.ErrInvalidRecordType
	}

	slog.Info("approval decision recorded",
		"record_id", req.RecordID,
		"record_type", req.RecordType,
		"personnel_type", req.PersonnelType,
		"status", req.ApprovalStatus,
		"actor_id", actorID,
	)

	return nil
}

// reconcileApprovedLeave materializes an approved range into per-day rows:
// one on_leave record per calendar day from start to end inclusive, reason
// copied from the leave request. Day-record upserts make this re-entrant --
// re-approving the same range rewrites the same rows instead of adding
// duplicates.
func (s *Service) reconcileApprovedLeave(ctx context.Context, ptype personnel.Type, rec attendance.LeaveRecord) {
	for d := rec.StartDate; !d.After(rec.EndDate); d = d.AddDate(0, 0, 1) {
		_, err := s.upsertDayRecord(ctx, ptype, rec.PersonnelID, d, attendance.StatusOnLeave, rec.Reason, attendance.ApprovalApproved)
		if err != nil {
			slog.Error("leave reconciliation failed",
				"leave_id", rec.ID,
				"personnel_id", rec.PersonnelID,
				"date", d.Format("2006-01-02"),
				"error", err,
			)
		}
	}
}

// DayRecordsByDate returns the attendance register for one day.
func (s *Service) DayRecordsByDate(ctx context.Context, ptype personnel.Type, date time.Time) ([]attendance.DayRecord, error) {
	return s.dayRepo.ListByDate(ctx, ptype, date)
}

// DayRecordsByPersonnel returns the attendance history for one person.
func (s *Service) DayRecordsByPersonnel(ctx context.Context, ptype personnel.Type, personnelID string) ([]attendance.DayRecord, error) {
	return s.dayRepo.ListByPersonnel(ctx, ptype, personnelID)
}

// LeaveRecordsByPersonnel returns the leave history for one person.
func (s *Service) LeaveRecordsByPersonnel(ctx context.Context, ptype personnel.Type, personnelID string) ([]attendance.LeaveRecord, error) {
	return s.leaveRepo.ListByPersonnel(ctx, ptype, personnelID)
}

// PendingLeaves returns the approval queue.
func (s *Service) PendingLeaves(ctx context.Context, ptype personnel.Type) ([]attendance.LeaveRecord, error) {
	return s.leaveRepo.ListPending(ctx, ptype)
}
