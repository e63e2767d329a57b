package handlers

import (
	"encoding/json"
	"net/http"

	"invoice-backend/internal/middleware"
	"invoice-backend/internal/models"
	"invoice-backend/internal/services"
	"invoice-backend/pkg/utils"
)

type FolderHandler struct {
	Service *services.FolderService
}

func NewFolderHandler(s *services.FolderService) *FolderHandler {
	return &FolderHandler{Service: s}
}

// ListFolders returns the owner's folders as a flat list; the client
// assembles the tree from parent_id.
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, []*models.InvoiceFolder{})
		return
	}

	folders, err := h.Service.ListFolders(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if folders == nil {
		folders = []*models.InvoiceFolder{}
	}
	utils.JSON(w, http.StatusOK, folders)
}

func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid folder ID")
		return
	}

	folder, err := h.Service.GetFolder(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, folder)
}

func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req models.CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.Service.CreateFolder(r.Context(), ownerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, folder)
}

func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid folder ID")
		return
	}

	var req models.UpdateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.Service.UpdateFolder(r.Context(), ownerID, id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, folder)
}

func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid folder ID")
		return
	}

	if err := h.Service.DeleteFolder(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
