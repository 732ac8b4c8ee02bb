package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/dto"
	"github.com/guttosm/boltjoint-service/internal/i18n"
	"github.com/guttosm/boltjoint-service/internal/logger"
)

// Recovery turns a handler panic into a translated 500 response and logs it
// with the request ID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				log := logger.Logger()
				log.Error().
					Str("request_id", requestID).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, i18n.T(c, i18n.ErrKeyInternalError)).WithRequestID(requestID))
			}
		}()
		c.Next()
	}
}
