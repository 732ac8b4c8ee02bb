package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/circuitbreaker"
)

// DefaultCheckTimeout bounds each readiness check.
const DefaultCheckTimeout = 2 * time.Second

// HealthChecker defines the interface for health check operations.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckerFunc adapts a function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) error

// HealthCheck calls f.
func (f HealthCheckerFunc) HealthCheck(ctx context.Context) error {
	return f(ctx)
}

type registeredChecker struct {
	checker  HealthChecker
	critical bool
}

// HealthHandler handles health check endpoints.
//
// Only critical checkers fail readiness. Design requests never touch the
// database, so a down log store degrades the report without taking the
// instance out of rotation.
type HealthHandler struct {
	mu              sync.RWMutex
	checkers        map[string]registeredChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	info            map[string]func() interface{}
	timeout         time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]registeredChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		info:            make(map[string]func() interface{}),
		timeout:         DefaultCheckTimeout,
	}
}

// RegisterChecker adds a dependency check. A failing critical check makes
// readiness return 503.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker, critical bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = registeredChecker{checker: checker, critical: critical}
}

// RegisterCircuitBreaker reports the breaker state in readiness.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.circuitBreakers[name] = cb
}

// RegisterInfo adds a section to the readiness body, e.g. cache statistics.
func (h *HealthHandler) RegisterInfo(name string, fn func() interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.info[name] = fn
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Runs the registered dependency checks. Returns 503 only when a critical dependency fails.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	degraded := false
	checks := make(map[string]interface{}, len(h.checkers)+len(h.circuitBreakers))

	for name, rc := range h.checkers {
		if err := rc.checker.HealthCheck(ctx); err != nil {
			checks[name] = err.Error()
			degraded = true
			if rc.critical {
				status = http.StatusServiceUnavailable
			}
			continue
		}
		checks[name] = "ok"
	}

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			degraded = true
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	body := gin.H{"status": "ok", "checks": checks}
	switch {
	case status != http.StatusOK:
		body["status"] = "unavailable"
	case degraded:
		body["status"] = "degraded"
	}
	for name, fn := range h.info {
		body[name] = fn()
	}

	c.JSON(status, body)
}
