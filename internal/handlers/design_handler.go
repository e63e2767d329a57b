package handlers

import (
	"net/http"

	"invoice-backend/internal/middleware"
	"invoice-backend/internal/storage"
	"invoice-backend/pkg/utils"
)

// maxDesignBytes caps background-design uploads at 5 MB.
const maxDesignBytes = 5 << 20

type DesignHandler struct {
	Store *storage.ObjectStore
}

func NewDesignHandler(store *storage.ObjectStore) *DesignHandler {
	return &DesignHandler{Store: store}
}

// Upload stores a background-design image and returns the object key the
// invoice form saves as its background_design reference.
func (h *DesignHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	if h.Store == nil {
		utils.Error(w, http.StatusServiceUnavailable, "object storage not configured")
		return
	}

	if err := r.ParseMultipartForm(maxDesignBytes); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("design")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "design file required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/png" && contentType != "image/jpeg" {
		utils.Error(w, http.StatusBadRequest, "design must be a PNG or JPEG image")
		return
	}

	key, err := h.Store.PutDesign(r.Context(), ownerID, header.Filename, contentType, file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to store design")
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]string{"key": key})
}
