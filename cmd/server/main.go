package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "bibliothek-backend/internal/api/http"
	"bibliothek-backend/internal/config"
	"bibliothek-backend/internal/logger"
	"bibliothek-backend/internal/repository/postgres"
	"bibliothek-backend/internal/service"
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
	logger.Info("Starting Bibliothek Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "base_path", cfg.Server.BasePath)
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
	if err := store.InitSchema(context.Background()); err != nil {
		logger.Error("Failed to initialize database schema", "error", err)
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	// Initialize Services
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.BorrowingRepository)
	addressSvc := service.NewAddressService(store.AddressRepository)
	mediumSvc := service.NewMediumService(store.MediumRepository, store.BorrowingRepository)
	borrowingSvc := service.NewBorrowingService(store.BorrowingRepository, store.CustomerRepository, store.MediumRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(cfg.Server.BasePath, customerSvc, addressSvc, mediumSvc, borrowingSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
