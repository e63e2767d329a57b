package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"invoice-backend/internal/apperr"
	"invoice-backend/pkg/utils"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Validation reasons are safe to show; anything unexpected is logged and
// masked as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrUnauthorized):
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
	case errors.As(err, &ve):
		utils.Error(w, http.StatusBadRequest, ve.Reason)
	default:
		log.Printf("[API] Internal error: %v", err)
		utils.Error(w, http.StatusInternalServerError, "internal error")
	}
}

// pathID extracts the {id} route variable.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

// folderScope parses the ?folder= query parameter into a folder scope:
// absent means "everything", "unfiled" means the no-folder scope, and a
// numeric id selects one folder.
func folderScope(r *http.Request) (folderID *int64, unfiled bool, ok bool) {
	raw := r.URL.Query().Get("folder")
	switch raw {
	case "":
		return nil, false, true
	case "unfiled":
		return nil, true, true
	default:
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, false, false
		}
		return &id, false, true
	}
}
