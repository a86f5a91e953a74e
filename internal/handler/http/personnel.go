package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/handler/http/response"
	personnelservice "github.com/ptcpms/personnel-backend-go/internal/service/personnel"
)

type PersonnelHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetByPNO(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PersonnelHandlerImpl struct {
	service *personnelservice.Service
}

func NewPersonnelHandler(service *personnelservice.Service) PersonnelHandler {
	return &PersonnelHandlerImpl{service: service}
}

// personnelType reads the {type} route param as a personnel type. Validity is
// checked again at the service boundary; this is only a conversion.
func personnelType(r *http.Request) personnel.Type {
	return personnel.Type(chi.URLParam(r, "type"))
}

// Create implements PersonnelHandler.
func (h *PersonnelHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req personnel.CreatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create personnel decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.service.Register(r.Context(), personnelType(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Personnel registered", created)
}

// List implements PersonnelHandler.
func (h *PersonnelHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context(), personnelType(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// GetByID implements PersonnelHandler.
func (h *PersonnelHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetByID(r.Context(), personnelType(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// GetByPNO implements PersonnelHandler.
func (h *PersonnelHandlerImpl) GetByPNO(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetByPNO(r.Context(), personnelType(r), chi.URLParam(r, "pno"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// Update implements PersonnelHandler.
func (h *PersonnelHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req personnel.UpdatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update personnel decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.service.Update(r.Context(), personnelType(r), chi.URLParam(r, "id"), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel updated", nil)
}

// Delete implements PersonnelHandler.
func (h *PersonnelHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), personnelType(r), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel deleted", nil)
}
