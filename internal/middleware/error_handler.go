package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/dto"
	"github.com/guttosm/boltjoint-service/internal/i18n"
	"github.com/guttosm/boltjoint-service/internal/logger"
	"github.com/rs/zerolog"
)

// ErrorHandler writes an ErrorResponse for errors collected on the gin context
// when the handler did not write a body. A status set with c.Status is kept;
// otherwise the response is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		level := zerolog.ErrorLevel
		if c.Writer.Written() {
			level = levelForStatus(c.Writer.Status())
		}
		log := logger.Logger()
		log.WithLevel(level).
			Str("request_id", requestID).
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("request error")

		if c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		message := i18n.T(c, i18n.ErrKeyInternalError)
		if status < http.StatusInternalServerError {
			message = i18n.T(c, i18n.ErrKeyInvalidRequest)
		}
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
	}
}
