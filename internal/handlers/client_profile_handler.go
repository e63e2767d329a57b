package handlers

import (
	"encoding/json"
	"net/http"

	"invoice-backend/internal/middleware"
	"invoice-backend/internal/models"
	"invoice-backend/internal/services"
	"invoice-backend/pkg/utils"
)

type ClientProfileHandler struct {
	Service *services.ClientProfileService
}

func NewClientProfileHandler(s *services.ClientProfileService) *ClientProfileHandler {
	return &ClientProfileHandler{Service: s}
}

func (h *ClientProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, []*models.ClientProfile{})
		return
	}

	profiles, err := h.Service.ListProfiles(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if profiles == nil {
		profiles = []*models.ClientProfile{}
	}
	utils.JSON(w, http.StatusOK, profiles)
}

func (h *ClientProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := h.Service.GetProfile(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, profile)
}

func (h *ClientProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req models.CreateClientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.Service.CreateProfile(r.Context(), ownerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, profile)
}

func (h *ClientProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	var req models.UpdateClientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.Service.UpdateProfile(r.Context(), ownerID, id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, profile)
}

func (h *ClientProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	if err := h.Service.DeleteProfile(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
