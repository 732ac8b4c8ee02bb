package app

import (
	"context"

	"github.com/guttosm/boltjoint-service/config"
	"github.com/guttosm/boltjoint-service/internal/http"
	"github.com/guttosm/boltjoint-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// selfTestDiameter is resolved by the calculator readiness check.
const selfTestDiameter = 16

// RouterComponents holds handlers, router configuration and the middleware
// state that must be stopped on shutdown.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig

	RateLimiter *middleware.RateLimiter
	Idempotency *middleware.IdempotencyStore
	AuditLogger *middleware.AsyncLogger
}

// InitializeRouter wires handlers, health checks and middleware state.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	rc := &RouterComponents{
		Idempotency: middleware.NewIdempotencyStore(middleware.DefaultIdempotencyTTL),
	}

	if cfg.Server.RateLimit > 0 {
		rc.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	var sink middleware.LogSink
	if db != nil {
		rc.AuditLogger = middleware.NewAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
		sink = rc.AuditLogger
	}

	var handlerOpts []http.HandlerOption
	if sink != nil {
		handlerOpts = append(handlerOpts, http.WithAuditSink(sink))
	}
	rc.Handler = http.NewHandler(services.Calculator, handlerOpts...)
	rc.HealthHandler = newHealthHandler(services, db, rc.AuditLogger)

	rc.Config = http.RouterConfig{
		RateLimiter:    rc.RateLimiter,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        middleware.NewAPIKeySet(cfg.Auth.APIKeys),
		JWT:            middleware.NewJWTVerifier(cfg.Auth.JWTSecretKey, cfg.Auth.JWTIssuer),
		Idempotency:    rc.Idempotency,
		LogSink:        sink,
	}

	log.Info().
		Bool("auth", cfg.Auth.Enabled).
		Int("api_keys", rc.Config.APIKeys.Len()).
		Bool("jwt", rc.Config.JWT != nil).
		Int("rate_limit", cfg.Server.RateLimit).
		Bool("log_store", db != nil).
		Msg("router configured")
	return rc
}

func newHealthHandler(services *ServiceComponents, db *DatabaseComponents, audit *middleware.AsyncLogger) *http.HealthHandler {
	h := http.NewHealthHandler()

	h.RegisterChecker("calculator", http.HealthCheckerFunc(func(context.Context) error {
		_, err := services.Calculator.ResolveGeometry(selfTestDiameter, 0, 0)
		return err
	}), true)

	if _, ok := services.Calculator.CacheMetrics(); ok {
		h.RegisterInfo("cache", func() interface{} {
			m, _ := services.Calculator.CacheMetrics()
			return m
		})
	}

	if db != nil {
		if db.DB != nil {
			h.RegisterChecker("mongodb", db.DB, false)
		}
		if db.LogsCircuitBreaker != nil {
			h.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
		}
	}
	if audit != nil {
		h.RegisterInfo("audit_log", func() interface{} { return audit.Stats() })
	}
	return h
}

// Stop releases the rate limiter, idempotency store and audit logger. The
// audit logger drains its buffer first.
func (rc *RouterComponents) Stop() {
	if rc.RateLimiter != nil {
		rc.RateLimiter.Stop()
	}
	if rc.Idempotency != nil {
		rc.Idempotency.Stop()
	}
	rc.AuditLogger.Stop()
}
