package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/dto"
	"github.com/guttosm/boltjoint-service/internal/i18n"
)

// DefaultRequestTimeout is used when Timeout is given a non-positive duration.
const DefaultRequestTimeout = 30 * time.Second

// Timeout attaches a deadline to the request context. Handlers are expected
// to honour it; when the deadline has passed and nothing was written, the
// middleware answers 504.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}
		c.AbortWithStatusJSON(http.StatusGatewayTimeout,
			dto.NewError(dto.ErrCodeTimeout, i18n.T(c, i18n.ErrKeyTimeout)).WithRequestID(GetRequestID(c)))
	}
}
