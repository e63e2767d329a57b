package handlers

import (
	"encoding/json"
	"net/http"

	"invoice-backend/internal/middleware"
	"invoice-backend/internal/models"
	"invoice-backend/internal/services"
	"invoice-backend/pkg/utils"
)

type TagHandler struct {
	Service *services.TagService
}

func NewTagHandler(s *services.TagService) *TagHandler {
	return &TagHandler{Service: s}
}

func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, []*models.Tag{})
		return
	}

	tags, err := h.Service.ListTags(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	utils.JSON(w, http.StatusOK, tags)
}

func (h *TagHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	tag, err := h.Service.GetTag(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, tag)
}

func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req models.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tag, err := h.Service.CreateTag(r.Context(), ownerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, tag)
}

func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	var req models.UpdateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tag, err := h.Service.UpdateTag(r.Context(), ownerID, id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, tag)
}

// DeleteTag removes the tag and strips it from every invoice and folder
// that carried it.
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	if err := h.Service.DeleteTag(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
