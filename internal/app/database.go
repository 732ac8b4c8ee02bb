package app

import (
	"context"
	"time"

	"github.com/guttosm/boltjoint-service/config"
	"github.com/guttosm/boltjoint-service/internal/circuitbreaker"
	"github.com/guttosm/boltjoint-service/internal/repository"
	"github.com/guttosm/boltjoint-service/internal/service"
	"github.com/rs/zerolog/log"
)

const setupTimeout = 5 * time.Second

// DatabaseComponents holds the MongoDB log store.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the logging service behind
// a circuit breaker. It returns nil when the database is disabled or
// unreachable; the service then runs without persisted logs.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to MongoDB, continuing without log store")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("connected to MongoDB")

	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if ttlDays > 0 {
		if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
			log.Warn().Err(err).Int("days", ttlDays).Msg("failed to set logs TTL index")
		}
	}

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		Name:             "mongodb-logs",
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		OnStateChange:    logBreakerTransition,
	})

	repo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     service.NewLoggingService(repo),
		LogsCircuitBreaker: logsCB,
	}
}

func logBreakerTransition(name string, from, to circuitbreaker.State) {
	ev := log.Warn()
	if to == circuitbreaker.StateClosed {
		ev = log.Info()
	}
	ev.Str("breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("circuit breaker state changed")
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
