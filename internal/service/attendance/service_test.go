package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcpms/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
)

type fakePersonnelRepo struct {
	rows map[string]personnel.Personnel
}

func newFakePersonnelRepo(rows ...personnel.Personnel) *fakePersonnelRepo {
	repo := &fakePersonnelRepo{rows: make(map[string]personnel.Personnel)}
	for _, p := range rows {
		repo.rows[p.ID] = p
	}
	return repo
}

func (f *fakePersonnelRepo) Create(_ context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakePersonnelRepo) Restore(_ context.Context, p personnel.Personnel) error {
	f.rows[p.ID] = p
	return nil
}

func (f *fakePersonnelRepo) GetByID(_ context.Context, ptype personnel.Type, id string) (personnel.Personnel, error) {
	p, ok := f.rows[id]
	if !ok || p.Type != ptype {
		return personnel.Personnel{}, personnel.ErrPersonnelNotFound
	}
	return p, nil
}

func (f *fakePersonnelRepo) GetByIDs(_ context.Context, ptype personnel.Type, ids []string) ([]personnel.Personnel, error) {
	var out []personnel.Personnel
	for _, id := range ids {
		if p, ok := f.rows[id]; ok && p.Type == ptype {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonnelRepo) GetByPNO(_ context.Context, ptype personnel.Type, pno string) (personnel.Personnel, error) {
	for _, p := range f.rows {
		if p.Type == ptype && p.PNO == pno {
			return p, nil
		}
	}
	return personnel.Personnel{}, personnel.ErrPersonnelNotFound
}

func (f *fakePersonnelRepo) List(_ context.Context, ptype personnel.Type) ([]personnel.Personnel, error) {
	var out []personnel.Personnel
	for _, p := range f.rows {
		if p.Type == ptype {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonnelRepo) Update(_ context.Context, _ personnel.Type, _ string, _ personnel.UpdatePersonnelRequest) error {
	return nil
}

func (f *fakePersonnelRepo) Delete(_ context.Context, _ personnel.Type, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakePersonnelRepo) DeleteMany(_ context.Context, _ personnel.Type, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f.rows[id]; ok {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakePersonnelRepo) ExistsByPNO(_ context.Context, ptype personnel.Type, pno string) (bool, error) {
	_, err := f.GetByPNO(context.Background(), ptype, pno)
	return err == nil, nil
}

type fakeDayRepo struct {
	records map[string]attendance.DayRecord
	// failDates makes writes for these YYYY-MM-DD dates fail.
	failDates map[string]bool
}

func newFakeDayRepo() *fakeDayRepo {
	return &fakeDayRepo{
		records:   make(map[string]attendance.DayRecord),
		failDates: make(map[string]bool),
	}
}

func (f *fakeDayRepo) Create(_ context.Context, _ personnel.Type, rec attendance.DayRecord) (attendance.DayRecord, error) {
	if f.failDates[rec.Date.Format("2006-01-02")] {
		return attendance.DayRecord{}, errors.New("write failed")
	}
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeDayRepo) GetByPersonnelAndDate(_ context.Context, _ personnel.Type, personnelID string, date time.Time) (*attendance.DayRecord, error) {
	for _, rec := range f.records {
		if rec.PersonnelID == personnelID && rec.Date.Equal(date) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeDayRepo) Update(_ context.Context, _ personnel.Type, id string, status attendance.Status, reason string, approval attendance.ApprovalStatus) error {
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrDayRecordNotFound
	}
	if f.failDates[rec.Date.Format("2006-01-02")] {
		return errors.New("write failed")
	}
	rec.Status = status
	rec.Reason = reason
	rec.ApprovalStatus = approval
	f.records[id] = rec
	return nil
}

func (f *fakeDayRepo) UpdateApproval(_ context.Context, _ personnel.Type, id string, approval attendance.ApprovalStatus) error {
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrDayRecordNotFound
	}
	rec.ApprovalStatus = approval
	f.records[id] = rec
	return nil
}

func (f *fakeDayRepo) ListByPersonnel(_ context.Context, _ personnel.Type, personnelID string) ([]attendance.DayRecord, error) {
	var out []attendance.DayRecord
	for _, rec := range f.records {
		if rec.PersonnelID == personnelID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeDayRepo) ListByDate(_ context.Context, _ personnel.Type, date time.Time) ([]attendance.DayRecord, error) {
	var out []attendance.DayRecord
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeLeaveRepo struct {
	records map[string]attendance.LeaveRecord
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{records: make(map[string]attendance.LeaveRecord)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, _ personnel.Type, rec attendance.LeaveRecord) (attendance.LeaveRecord, error) {
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, _ personnel.Type, id string) (attendance.LeaveRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.LeaveRecord{}, attendance.ErrLeaveRecordNotFound
	}
	return rec, nil
}

func (f *fakeLeaveRepo) GetByPersonnelAndStartDate(_ context.Context, _ personnel.Type, personnelID string, startDate time.Time) (*attendance.LeaveRecord, error) {
	for _, rec := range f.records {
		if rec.PersonnelID == personnelID && rec.StartDate.Equal(startDate) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, _ personnel.Type, id string, endDate time.Time, reason string, leaveType attendance.LeaveType, status attendance.ApprovalStatus) error {
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrLeaveRecordNotFound
	}
	rec.EndDate = endDate
	rec.Reason = reason
	rec.LeaveType = leaveType
	rec.Status = status
	f.records[id] = rec
	return nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, _ personnel.Type, id string, status attendance.ApprovalStatus) error {
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrLeaveRecordNotFound
	}
	rec.Status = status
	f.records[id] = rec
	return nil
}

func (f *fakeLeaveRepo) ListByPersonnel(_ context.Context, _ personnel.Type, personnelID string) ([]attendance.LeaveRecord, error) {
	var out []attendance.LeaveRecord
	for _, rec := range f.records {
		if rec.PersonnelID == personnelID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListPending(_ context.Context, _ personnel.Type) ([]attendance.LeaveRecord, error) {
	var out []attendance.LeaveRecord
	for _, rec := range f.records {
		if rec.Status == attendance.ApprovalPending {
			out = append(out, rec)
		}
	}
	return out, nil
}

func testTrainee() personnel.Personnel {
	return personnel.Personnel{
		ID:   "t-1",
		Type: personnel.TypeTrainee,
		PNO:  "10001",
		Name: "Sunil Verma",
		Rank: "Recruit Constable",
	}
}

func TestSubmitDayStatus(t *testing.T) {
	ctx := context.Background()
	dayRepo := newFakeDayRepo()
	svc := NewAttendanceService(dayRepo, newFakeLeaveRepo(), newFakePersonnelRepo(testTrainee()))

	req := attendance.SubmitDayStatusRequest{
		PersonnelID:   "t-1",
		PersonnelType: "trainee",
		Date:          "2026-03-02",
		Status:        "absent",
	}

	rec, err := svc.SubmitDayStatus(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Equal(t, attendance.ApprovalApproved, rec.ApprovalStatus)

	t.Run("resubmission updates the same row", func(t *testing.T) {
		req.Status = "duty"
		req.Reason = "escort duty"

		updated, err := svc.SubmitDayStatus(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, updated.ID)
		assert.Equal(t, attendance.StatusDuty, updated.Status)
		assert.Equal(t, attendance.ApprovalPending, updated.ApprovalStatus)
		assert.Len(t, dayRepo.records, 1)
	})

	t.Run("unknown personnel is rejected", func(t *testing.T) {
		bad := req
		bad.PersonnelID = "ghost"
		_, err := svc.SubmitDayStatus(ctx, bad)
		assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
	})
}

func TestSubmitLeaveRange(t *testing.T) {
	ctx := context.Background()
	leaveRepo := newFakeLeaveRepo()
	svc := NewAttendanceService(newFakeDayRepo(), leaveRepo, newFakePersonnelRepo(testTrainee()))

	req := attendance.SubmitLeaveRangeRequest{
		PersonnelID:   "t-1",
		PersonnelType: "trainee",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-04",
		Reason:        "sister's wedding",
		LeaveType:     "CL",
	}

	rec, err := svc.SubmitLeaveRange(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, attendance.ApprovalPending, rec.Status)
	assert.Equal(t, attendance.LeaveTypeCasual, rec.LeaveType)

	t.Run("missing leave type defaults to other", func(t *testing.T) {
		other := req
		other.StartDate = "2026-04-01"
		other.EndDate = "2026-04-01"
		other.LeaveType = ""

		created, err := svc.SubmitLeaveRange(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, attendance.LeaveTypeOther, created.LeaveType)
	})

	t.Run("resubmission for same start date resets to pending", func(t *testing.T) {
		require.NoError(t, leaveRepo.UpdateStatus(ctx, personnel.TypeTrainee, rec.ID, attendance.ApprovalApproved))

		req.EndDate = "2026-03-06"
		updated, err := svc.SubmitLeaveRange(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, updated.ID)
		assert.Equal(t, attendance.ApprovalPending, updated.Status)
		assert.Equal(t, "2026-03-06", updated.EndDate.Format("2006-01-02"))
	})
}

func TestUpdateApprovalStatusForAbsence(t *testing.T) {
	ctx := context.Background()
	dayRepo := newFakeDayRepo()
	svc := NewAttendanceService(dayRepo, newFakeLeaveRepo(), newFakePersonnelRepo(testTrainee()))

	rec, err := svc.SubmitDayStatus(ctx, attendance.SubmitDayStatusRequest{
		PersonnelID:   "t-1",
		PersonnelType: "trainee",
		Date:          "2026-03-02",
		Status:        "duty",
	})
	require.NoError(t, err)
	require.Equal(t, attendance.ApprovalPending, rec.ApprovalStatus)

	err = svc.UpdateApprovalStatus(ctx, attendance.UpdateApprovalRequest{
		RecordID:       rec.ID,
		RecordType:     "absence",
		PersonnelType:  "trainee",
		ApprovalStatus: "rejected",
	}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ApprovalRejected, dayRepo.records[rec.ID].ApprovalStatus)
}

func TestApprovingLeaveMaterializesDayRecords(t *testing.T) {
	ctx := context.Background()
	dayRepo := newFakeDayRepo()
	leaveRepo := newFakeLeaveRepo()
	svc := NewAttendanceService(dayRepo, leaveRepo, newFakePersonnelRepo(testTrainee()))

	rec, err := svc.SubmitLeaveRange(ctx, attendance.SubmitLeaveRangeRequest{
		PersonnelID:   "t-1",
		PersonnelType: "trainee",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-04",
		Reason:        "medical",
		LeaveType:     "ML",
	})
	require.NoError(t, err)

	approve := attendance.UpdateApprovalRequest{
		RecordID:       rec.ID,
		RecordType:     "leave",
		PersonnelType:  "trainee",
		ApprovalStatus: "approved",
	}
	require.NoError(t, svc.UpdateApprovalStatus(ctx, approve, "admin-1"))

	assert.Equal(t, attendance.ApprovalApproved, leaveRepo.records[rec.ID].Status)

	days, err := svc.DayRecordsByPersonnel(ctx, personnel.TypeTrainee, "t-1")
	require.NoError(t, err)
	require.Len(t, days, 3)
	for _, d := range days {
		assert.Equal(t, attendance.StatusOnLeave, d.Status)
		assert.Equal(t, attendance.ApprovalApproved, d.ApprovalStatus)
		assert.Equal(t, "medical", d.Reason)
	}

	t.Run("re-approval rewrites rows instead of duplicating", func(t *testing.T) {
		require.NoError(t, svc.UpdateApprovalStatus(ctx, approve, "admin-1"))
		days, err := svc.DayRecordsByPersonnel(ctx, personnel.TypeTrainee, "t-1")
		require.NoError(t, err)
		assert.Len(t, days, 3)
	})

	t.Run("rejection does not touch day records", func(t *testing.T) {
		reject := approve
		reject.ApprovalStatus = "rejected"
		require.NoError(t, svc.UpdateApprovalStatus(ctx, reject, "admin-1"))

		assert.Equal(t, attendance.ApprovalRejected, leaveRepo.records[rec.ID].Status)
		days, err := svc.DayRecordsByPersonnel(ctx, personnel.TypeTrainee, "t-1")
		require.NoError(t, err)
		assert.Len(t, days, 3)
	})
}

func TestReconciliationFailureKeepsApproval(t *testing.T) {
	ctx := context.Background()
	dayRepo := newFakeDayRepo()
	leaveRepo := newFakeLeaveRepo()
	svc := NewAttendanceService(dayRepo, leaveRepo, newFakePersonnelRepo(testTrainee()))

	rec, err := svc.SubmitLeaveRange(ctx, attendance.SubmitLeaveRangeRequest{
		PersonnelID:   "t-1",
		PersonnelType: "trainee",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-04",
		Reason:        "medical",
	})
	require.NoError(t, err)

	dayRepo.failDates["2026-03-03"] = true

	err = svc.UpdateApprovalStatus(ctx, attendance.UpdateApprovalRequest{
		RecordID:       rec.ID,
		RecordType:     "leave",
		PersonnelType:  "trainee",
		ApprovalStatus: "approved",
	}, "admin-1")
	require.NoError(t, err)

	// The decision stands; only the failing day is missing.
	assert.Equal(t, attendance.ApprovalApproved, leaveRepo.records[rec.ID].Status)
	days, err := svc.DayRecordsByPersonnel(ctx, personnel.TypeTrainee, "t-1")
	require.NoError(t, err)
	assert.Len(t, days, 2)
}
