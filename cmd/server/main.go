package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "equiprent-backend/internal/api/http"
	"equiprent-backend/internal/config"
	"equiprent-backend/internal/jobs"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository/postgres"
	"equiprent-backend/internal/scheduler"
	"equiprent-backend/internal/security"
	"equiprent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Equiprent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service. Notices are skipped entirely when SMTP is not
	// configured.
	var emailSvc service.EmailService
	if cfg.SMTP.Host != "" {
		emailSvc = service.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.User,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		)
		logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
	} else {
		logger.Info("SMTP not configured, email notices disabled")
	}

	// Initialize Services
	expiry := service.NewExpiryScheduler(
		store.RentalRepository,
		store.InventoryRepository,
		store.CustomerRepository,
		emailSvc,
	)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.InventoryRepository,
		store.ProductRepository,
		store.PendencyRepository,
		store.CustomerRepository,
		emailSvc,
		expiry,
		cfg.Rental,
	)
	productSvc := service.NewProductService(store.ProductRepository, store.InventoryRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	authSvc := service.NewAuthService(store.CustomerRepository, tokenManager)
	supplierSvc := service.NewSupplierService(store.SupplierRepository)
	pendencySvc := service.NewPendencyService(store.PendencyRepository)

	// Initialize HTTP handlers and router
	router := httpapi.NewRouter(httpapi.Handlers{
		Rentals:    httpapi.NewRentalHandler(rentalSvc),
		Products:   httpapi.NewProductHandler(productSvc),
		Customers:  httpapi.NewCustomerHandler(customerSvc),
		Suppliers:  httpapi.NewSupplierHandler(supplierSvc),
		Pendencies: httpapi.NewPendencyHandler(pendencySvc),
		Auth:       httpapi.NewAuthHandler(authSvc),
	}, tokenManager)

	// Recover deadlines lost to the previous shutdown before serving traffic.
	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	count, err := expiry.Sweep(startupCtx)
	cancel()
	if err != nil {
		logger.Error("Startup expiry sweep failed", "error", err)
		log.Fatalf("Startup expiry sweep failed: %v", err)
	}
	if count > 0 {
		logger.Info("Startup sweep cancelled expired rentals", "count", count)
	}

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(expiry, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	cronScheduler.Stop()
	expiry.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
