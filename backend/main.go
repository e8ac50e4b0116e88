package main

import (
	"log"
	"os"

	"coursehub/backend/config"
	"coursehub/backend/routes"
	"coursehub/backend/storage"
	"coursehub/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		Output:       os.Stdout,
		EnableColors: cfg.Colorize(),
	})

	store, err := openStorage(cfg, logger)
	if err != nil {
		logger.Fatalf("Error initializing storage: %v", err)
	}

	app := routes.NewApp(store, cfg, logger)

	logger.Printf("listening on :%s (storage: %s)", cfg.ServerPort, cfg.StorageDriver)
	logger.Fatal(app.Listen(":" + cfg.ServerPort))
}

func openStorage(cfg *config.Config, logger *log.Logger) (storage.Storage, error) {
	if !cfg.UsePostgres() {
		return storage.NewMemStorage(), nil
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		return nil, err
	}

	store := storage.NewGormStorage(db)
	if err := store.AutoMigrate(); err != nil {
		return nil, err
	}
	if err := store.Seed(); err != nil {
		return nil, err
	}
	logger.Printf("connected to postgres at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	return store, nil
}
