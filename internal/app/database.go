// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/guttosm/pantry-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB           *repository.MongoDB
	BatchesRepo  repository.BatchesRepositoryInterface
	AuditService service.AuditService
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if the database is disabled or the connection fails; callers
// fall back to the in-memory batch store.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for consumption logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetConsumptionLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set consumption logs TTL index (may already exist)")
	}

	batchesRepo := repository.NewBatchesRepository(db)
	logsRepo := repository.NewConsumptionLogsRepository(db)
	auditService := service.NewAuditService(logsRepo)

	return &DatabaseComponents{
		DB:           db,
		BatchesRepo:  batchesRepo,
		AuditService: auditService,
	}
}
