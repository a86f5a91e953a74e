package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ptcpms/personnel-backend-go/internal/domain/archive"
	"github.com/ptcpms/personnel-backend-go/internal/handler/http/middleware"
	"github.com/ptcpms/personnel-backend-go/internal/handler/http/response"
	archiveservice "github.com/ptcpms/personnel-backend-go/internal/service/archive"
)

type ArchiveHandler interface {
	Archive(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Unarchive(w http.ResponseWriter, r *http.Request)
	CreateFolder(w http.ResponseWriter, r *http.Request)
	ListFolders(w http.ResponseWriter, r *http.Request)
	DeleteFolder(w http.ResponseWriter, r *http.Request)
}

type ArchiveHandlerImpl struct {
	service *archiveservice.Service
}

func NewArchiveHandler(service *archiveservice.Service) ArchiveHandler {
	return &ArchiveHandlerImpl{service: service}
}

// optionalQueryParam returns a pointer to the named query value, nil when the
// parameter is absent or blank.
func optionalQueryParam(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

// Archive implements ArchiveHandler. One request archives one or many records
// of a single personnel type.
func (h *ArchiveHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	var req archive.ArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Archive decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PersonnelType = chi.URLParam(r, "type")

	res, err := h.service.ArchiveMany(r.Context(), req, middleware.ActorID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel archived", res)
}

// List implements ArchiveHandler.
func (h *ArchiveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListArchived(r.Context(), personnelType(r), optionalQueryParam(r, "folder_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Unarchive implements ArchiveHandler.
func (h *ArchiveHandlerImpl) Unarchive(w http.ResponseWriter, r *http.Request) {
	restored, err := h.service.UnarchiveOne(r.Context(), personnelType(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel restored", restored)
}

// CreateFolder implements ArchiveHandler.
func (h *ArchiveHandlerImpl) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateFolder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	folder, err := h.service.CreateFolder(r.Context(), req, middleware.ActorID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Folder created", folder)
}

// ListFolders implements ArchiveHandler.
func (h *ArchiveHandlerImpl) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.service.ListFolders(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, folders)
}

// DeleteFolder implements ArchiveHandler. Members move to target_folder_id
// when given, otherwise they are deleted with the folder.
func (h *ArchiveHandlerImpl) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteFolder(r.Context(), chi.URLParam(r, "id"), optionalQueryParam(r, "target_folder_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Folder deleted", nil)
}
