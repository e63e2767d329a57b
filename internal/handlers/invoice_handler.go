package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"invoice-backend/internal/middleware"
	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/services"
	"invoice-backend/pkg/utils"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
	PDF     *services.PDFService
}

func NewInvoiceHandler(s *services.InvoiceService, pdf *services.PDFService) *InvoiceHandler {
	return &InvoiceHandler{Service: s, PDF: pdf}
}

// ListInvoices returns the owner's invoice summaries. Without an identity
// the list is empty rather than an error, so a logged-out UI still renders.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, []*models.InvoiceSummary{})
		return
	}

	folderID, unfiled, ok := folderScope(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid folder filter")
		return
	}

	filter := repositories.InvoiceFilter{
		FolderID:        folderID,
		Unfiled:         unfiled,
		IncludeArchived: r.URL.Query().Get("archived") == "1",
		Status:          models.InvoiceStatus(r.URL.Query().Get("status")),
	}
	if tagID, err := strconv.ParseInt(r.URL.Query().Get("tag"), 10, 64); err == nil {
		filter.TagID = tagID
	}

	invoices, err := h.Service.ListInvoices(r.Context(), ownerID, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if invoices == nil {
		invoices = []*models.InvoiceSummary{}
	}
	utils.JSON(w, http.StatusOK, invoices)
}

// GetInvoice returns one full invoice document.
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	inv, err := h.Service.GetInvoice(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

// CreateInvoice creates a new invoice
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req models.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.Service.CreateInvoice(r.Context(), ownerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, inv)
}

// UpdateInvoice applies a partial patch
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	var req models.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.Service.UpdateInvoice(r.Context(), ownerID, id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

// DeleteInvoice soft-deletes an invoice
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	if err := h.Service.DeleteInvoice(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// RestoreInvoice clears a soft delete
func (h *InvoiceHandler) RestoreInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	inv, err := h.Service.RestoreInvoice(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

// DuplicateInvoice copies an invoice with a fresh number
func (h *InvoiceHandler) DuplicateInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	inv, err := h.Service.DuplicateInvoice(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, inv)
}

// ChangeStatus moves an invoice through its lifecycle
func (h *InvoiceHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	var req models.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.Service.ChangeStatus(r.Context(), ownerID, id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

// NextNumber suggests the next invoice number for a folder scope
func (h *InvoiceHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusNotFound, "not found")
		return
	}
	folderID, _, ok := folderScope(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid folder filter")
		return
	}

	number, err := h.Service.NextNumber(r.Context(), ownerID, folderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"invoice_number": number})
}

// CheckNumber reports exact-string availability in a folder scope
func (h *InvoiceHandler) CheckNumber(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusNotFound, "not found")
		return
	}
	number := r.URL.Query().Get("number")
	if number == "" {
		utils.Error(w, http.StatusBadRequest, "number parameter required")
		return
	}
	folderID, _, ok := folderScope(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid folder filter")
		return
	}

	resp, err := h.Service.CheckNumber(r.Context(), ownerID, folderID, number)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

// NextPeriod derives the next billing window for a folder scope
func (h *InvoiceHandler) NextPeriod(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusNotFound, "not found")
		return
	}
	folderID, _, ok := folderScope(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid folder filter")
		return
	}

	period, err := h.Service.NextPeriod(r.Context(), ownerID, folderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, period)
}

// WorkHours expands a date range into per-day records for the form
func (h *InvoiceHandler) WorkHours(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	hours, _ := strconv.ParseFloat(r.URL.Query().Get("hours"), 64)

	records, err := h.Service.GenerateWorkHours(start, end, hours)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, records)
}

// ExportPDF renders the invoice to PDF, recomputing totals first so the
// document can never show stale math.
func (h *InvoiceHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	inv, err := h.Service.GetInvoice(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pdfBytes, archiveKey, err := h.PDF.RenderAndArchive(r.Context(), inv)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s.pdf"`, inv.InvoiceNumber))
	if archiveKey != "" {
		w.Header().Set("X-Archive-Key", archiveKey)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// Stats returns the owner's dashboard rollup
func (h *InvoiceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, &services.DashboardStats{
			StatusCounts: map[models.InvoiceStatus]int{},
		})
		return
	}

	stats, err := h.Service.Stats(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}
