package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"invoice-backend/internal/auth"
	"invoice-backend/internal/cache"
	"invoice-backend/internal/config"
	"invoice-backend/internal/database"
	"invoice-backend/internal/db"
	"invoice-backend/internal/events"
	"invoice-backend/internal/handlers"
	"invoice-backend/internal/health"
	h "invoice-backend/internal/http"
	"invoice-backend/internal/middleware"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/services"
	"invoice-backend/internal/storage"
	"invoice-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (dashboard stats will hit the database)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	// Uses embedded migrations for standalone binary operation
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize object store (optional - PDF archival degrades gracefully)
	objectStore := storage.New(cfg)
	if objectStore == nil {
		log.Println("[Storage] Object store not configured; PDF exports will not be archived")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	folderRepo := repositories.NewFolderRepository(pool)
	tagRepo := repositories.NewTagRepository(pool)
	profileRepo := repositories.NewClientProfileRepository(pool)
	statusLogRepo := repositories.NewStatusLogRepository(pool)

	// Event hub for websocket push
	hub := events.NewHub()

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	invoiceService := services.NewInvoiceService(invoiceRepo, folderRepo, tagRepo, statusLogRepo, hub, cfg)
	folderService := services.NewFolderService(folderRepo, invoiceRepo, tagRepo)
	tagService := services.NewTagService(tagRepo, invoiceRepo, folderRepo)
	profileService := services.NewClientProfileService(profileRepo)
	pdfService := services.NewPDFService(objectStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, pdfService)
	folderHandler := handlers.NewFolderHandler(folderService)
	tagHandler := handlers.NewTagHandler(tagService)
	profileHandler := handlers.NewClientProfileHandler(profileService)
	statusLogHandler := handlers.NewStatusLogHandler(statusLogRepo)
	designHandler := handlers.NewDesignHandler(objectStore)
	eventsHandler := handlers.NewEventsHandler(hub)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		invoiceHandler,
		folderHandler,
		tagHandler,
		profileHandler,
		statusLogHandler,
		designHandler,
		eventsHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
