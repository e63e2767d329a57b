package handlers

import (
	"encoding/json"
	"net/http"

	"invoice-backend/internal/middleware"
	"invoice-backend/internal/models"
	"invoice-backend/pkg/utils"
)

// Bulk endpoints are best effort: each ID is processed independently and
// the result reports per-ID failures instead of aborting the batch.

func (h *InvoiceHandler) BulkMove(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req models.BulkMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.BulkMove(r.Context(), ownerID, &req))
}

func (h *InvoiceHandler) BulkArchive(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req models.BulkArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.BulkArchive(r.Context(), ownerID, &req))
}

func (h *InvoiceHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req models.BulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.BulkStatus(r.Context(), ownerID, &req))
}

func (h *InvoiceHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req models.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.BulkDelete(r.Context(), ownerID, &req))
}
