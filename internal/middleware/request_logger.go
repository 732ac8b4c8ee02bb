package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/model"
	"github.com/guttosm/boltjoint-service/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger writes one structured line per request, at a level chosen by
// status code, and forwards the same entry to sink when it is not nil.
func RequestLogger(sink LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		level := levelForStatus(statusCode)

		log := logger.Logger()
		event := log.WithLevel(level).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if principal := GetPrincipal(c); principal != "" {
			event = event.Str("principal", principal)
		}
		if len(c.Errors) > 0 {
			event = event.Str("error", c.Errors.Last().Error())
		}
		event.Msg("HTTP request")

		if sink == nil {
			return
		}
		entry := &model.LogEntry{
			Timestamp:  start,
			Level:      level.String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Principal:  GetPrincipal(c),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}
		sink.Log(entry)
	}
}

func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
