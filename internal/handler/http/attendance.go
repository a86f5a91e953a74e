package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ptcpms/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcpms/personnel-backend-go/internal/handler/http/middleware"
	"github.com/ptcpms/personnel-backend-go/internal/handler/http/response"
	attendanceservice "github.com/ptcpms/personnel-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	SubmitDayStatus(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByPersonnel(w http.ResponseWriter, r *http.Request)
	SubmitLeaveRange(w http.ResponseWriter, r *http.Request)
	ListPendingLeaves(w http.ResponseWriter, r *http.Request)
	ListLeavesByPersonnel(w http.ResponseWriter, r *http.Request)
	UpdateApprovalStatus(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	service *attendanceservice.Service
}

func NewAttendanceHandler(service *attendanceservice.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{service: service}
}

// SubmitDayStatus implements AttendanceHandler. The personnel type comes from
// the route, not the body.
func (h *AttendanceHandlerImpl) SubmitDayStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitDayStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitDayStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PersonnelType = chi.URLParam(r, "type")

	rec, err := h.service.SubmitDayStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", rec)
}

// ListByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	rows, err := h.service.DayRecordsByDate(r.Context(), personnelType(r), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// ListByPersonnel implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByPersonnel(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.DayRecordsByPersonnel(r.Context(), personnelType(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// SubmitLeaveRange implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SubmitLeaveRange(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitLeaveRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitLeaveRange decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PersonnelType = chi.URLParam(r, "type")

	rec, err := h.service.SubmitLeaveRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request recorded", rec)
}

// ListPendingLeaves implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListPendingLeaves(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.PendingLeaves(r.Context(), personnelType(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// ListLeavesByPersonnel implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListLeavesByPersonnel(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.LeaveRecordsByPersonnel(r.Context(), personnelType(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// UpdateApprovalStatus implements AttendanceHandler. The acting admin comes
// from the verified token, never from the body.
func (h *AttendanceHandlerImpl) UpdateApprovalStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateApprovalStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.service.UpdateApprovalStatus(r.Context(), req, middleware.ActorID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Approval status updated", nil)
}
