package handlers

import (
	"net/http"
	"strconv"

	"invoice-backend/internal/middleware"
	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
	"invoice-backend/pkg/utils"
)

type StatusLogHandler struct {
	Repo *repositories.StatusLogRepository
}

func NewStatusLogHandler(repo *repositories.StatusLogRepository) *StatusLogHandler {
	return &StatusLogHandler{Repo: repo}
}

// ListLogs returns the owner's status transition audit trail, optionally
// narrowed with ?invoice=<id>.
func (h *StatusLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, []*models.StatusLog{})
		return
	}

	var invoiceID int64
	if raw := r.URL.Query().Get("invoice"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid invoice filter")
			return
		}
		invoiceID = id
	}

	logs, err := h.Repo.List(r.Context(), ownerID, invoiceID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch status logs")
		return
	}
	if logs == nil {
		logs = []*models.StatusLog{}
	}
	utils.JSON(w, http.StatusOK, logs)
}
