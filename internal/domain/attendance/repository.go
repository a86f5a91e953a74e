package attendance

import (
	"context"
	"time"

	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
)

// DayRecordRepository - interface over the per-type day-status tables.
type DayRecordRepository interface {
	Create(ctx context.Context, ptype personnel.Type, rec DayRecord) (DayRecord, error)
	// GetByPersonnelAndDate returns nil when no row exists for the pair.
	GetByPersonnelAndDate(ctx context.Context, ptype personnel.Type, personnelID string, date time.Time) (*DayRecord, error)
	Update(ctx context.Context, ptype personnel.Type, id string, status Status, reason string, approval ApprovalStatus) error
	UpdateApproval(ctx context.Context, ptype personnel.Type, id string, approval ApprovalStatus) error
	ListByPersonnel(ctx context.Context, ptype personnel.Type, personnelID string) ([]DayRecord, error)
	ListByDate(ctx context.Context, ptype personnel.Type, date time.Time) ([]DayRecord, error)
}

// LeaveRecordRepository - interface over the per-type leave-range tables.
type LeaveRecordRepository interface {
	Create(ctx context.Context, ptype personnel.Type, rec LeaveRecord) (LeaveRecord, error)
	GetByID(ctx context.Context, ptype personnel.Type, id string) (LeaveRecord, error)
	// GetByPersonnelAndStartDate returns nil when no row exists for the pair.
	GetByPersonnelAndStartDate(ctx context.Context, ptype personnel.Type, personnelID string, startDate time.Time) (*LeaveRecord, error)
	Update(ctx context.Context, ptype personnel.Type, id string, endDate time.Time, reason string, leaveType LeaveType, status ApprovalStatus) error
	UpdateStatus(ctx context.Context, ptype personnel.Type, id string, status ApprovalStatus) error
	ListByPersonnel(ctx context.Context, ptype personnel.Type, personnelID string) ([]LeaveRecord, error)
	ListPending(ctx context.Context, ptype personnel.Type) ([]LeaveRecord, error)
}
