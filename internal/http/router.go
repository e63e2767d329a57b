package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"invoice-backend/internal/handlers"
	"invoice-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	invoiceHandler *handlers.InvoiceHandler,
	folderHandler *handlers.FolderHandler,
	tagHandler *handlers.TagHandler,
	profileHandler *handlers.ClientProfileHandler,
	statusLogHandler *handlers.StatusLogHandler,
	designHandler *handlers.DesignHandler,
	eventsHandler *handlers.EventsHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Invoices
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(authMiddleware.Authenticate)
	invoicesAPI.HandleFunc("", invoiceHandler.ListInvoices).Methods("GET")
	invoicesAPI.HandleFunc("", invoiceHandler.CreateInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/next-number", invoiceHandler.NextNumber).Methods("GET")
	invoicesAPI.HandleFunc("/check-number", invoiceHandler.CheckNumber).Methods("GET")
	invoicesAPI.HandleFunc("/next-period", invoiceHandler.NextPeriod).Methods("GET")
	invoicesAPI.HandleFunc("/work-hours", invoiceHandler.WorkHours).Methods("GET")
	invoicesAPI.HandleFunc("/stats", invoiceHandler.Stats).Methods("GET")
	invoicesAPI.HandleFunc("/bulk/move", invoiceHandler.BulkMove).Methods("POST")
	invoicesAPI.HandleFunc("/bulk/archive", invoiceHandler.BulkArchive).Methods("POST")
	invoicesAPI.HandleFunc("/bulk/status", invoiceHandler.BulkStatus).Methods("POST")
	invoicesAPI.HandleFunc("/bulk/delete", invoiceHandler.BulkDelete).Methods("POST")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.GetInvoice).Methods("GET")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.UpdateInvoice).Methods("PUT")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.DeleteInvoice).Methods("DELETE")
	invoicesAPI.HandleFunc("/{id}/restore", invoiceHandler.RestoreInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/{id}/duplicate", invoiceHandler.DuplicateInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/{id}/status", invoiceHandler.ChangeStatus).Methods("POST")
	invoicesAPI.HandleFunc("/{id}/pdf", invoiceHandler.ExportPDF).Methods("GET")

	// Protected API routes - Folders
	foldersAPI := r.PathPrefix("/api/folders").Subrouter()
	foldersAPI.Use(authMiddleware.Authenticate)
	foldersAPI.HandleFunc("", folderHandler.ListFolders).Methods("GET")
	foldersAPI.HandleFunc("", folderHandler.CreateFolder).Methods("POST")
	foldersAPI.HandleFunc("/{id}", folderHandler.GetFolder).Methods("GET")
	foldersAPI.HandleFunc("/{id}", folderHandler.UpdateFolder).Methods("PUT")
	foldersAPI.HandleFunc("/{id}", folderHandler.DeleteFolder).Methods("DELETE")

	// Protected API routes - Tags
	tagsAPI := r.PathPrefix("/api/tags").Subrouter()
	tagsAPI.Use(authMiddleware.Authenticate)
	tagsAPI.HandleFunc("", tagHandler.ListTags).Methods("GET")
	tagsAPI.HandleFunc("", tagHandler.CreateTag).Methods("POST")
	tagsAPI.HandleFunc("/{id}", tagHandler.GetTag).Methods("GET")
	tagsAPI.HandleFunc("/{id}", tagHandler.UpdateTag).Methods("PUT")
	tagsAPI.HandleFunc("/{id}", tagHandler.DeleteTag).Methods("DELETE")

	// Protected API routes - Client Profiles
	profilesAPI := r.PathPrefix("/api/client-profiles").Subrouter()
	profilesAPI.Use(authMiddleware.Authenticate)
	profilesAPI.HandleFunc("", profileHandler.ListProfiles).Methods("GET")
	profilesAPI.HandleFunc("", profileHandler.CreateProfile).Methods("POST")
	profilesAPI.HandleFunc("/{id}", profileHandler.GetProfile).Methods("GET")
	profilesAPI.HandleFunc("/{id}", profileHandler.UpdateProfile).Methods("PUT")
	profilesAPI.HandleFunc("/{id}", profileHandler.DeleteProfile).Methods("DELETE")

	// Protected API routes - Status Logs
	statusLogsAPI := r.PathPrefix("/api/status-logs").Subrouter()
	statusLogsAPI.Use(authMiddleware.Authenticate)
	statusLogsAPI.HandleFunc("", statusLogHandler.ListLogs).Methods("GET")

	// Protected API routes - Background Designs
	designsAPI := r.PathPrefix("/api/designs").Subrouter()
	designsAPI.Use(authMiddleware.Authenticate)
	designsAPI.HandleFunc("", designHandler.Upload).Methods("POST")

	// Protected websocket feed
	eventsAPI := r.PathPrefix("/api/events").Subrouter()
	eventsAPI.Use(authMiddleware.Authenticate)
	eventsAPI.HandleFunc("/ws", eventsHandler.Subscribe).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.Basic).Methods("GET")
	r.HandleFunc("/health/system", healthHandler.System).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
