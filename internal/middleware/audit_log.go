package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/model"
)

// AuditLog records a completed design action, such as "design_lap", to sink.
func AuditLog(sink LogSink, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	sink.Log(auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed design action with its error.
func AuditLogError(sink LogSink, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := auditEntry(c, "warn", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Principal:  GetPrincipal(c),
		ActionType: actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
