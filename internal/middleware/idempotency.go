package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/dto"
	"github.com/guttosm/boltjoint-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the store.
	IdempotencyReplayedHeader = "Idempotency-Replayed"
	// DefaultIdempotencyTTL is how long responses are replayed.
	DefaultIdempotencyTTL = 5 * time.Minute

	maxIdempotentBody = 1 << 20
)

// Idempotency replays the stored response of a POST carrying a previously
// seen Idempotency-Key with the same caller, path and body. A duplicate
// arriving while the first is still running gets 409. Only 2xx responses
// are stored. A nil store disables the middleware.
func Idempotency(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		idemKey := c.GetHeader(IdempotencyKeyHeader)
		if store == nil || c.Request.Method != http.MethodPost || idemKey == "" {
			c.Next()
			return
		}

		key, err := fingerprintRequest(c, idemKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewError(dto.ErrCodeInvalidRequest, i18n.T(c, i18n.ErrKeyInvalidRequestBody)).WithRequestID(GetRequestID(c)))
			return
		}

		stored, inFlight := store.begin(key)
		switch {
		case inFlight:
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewError(dto.ErrCodeConflict, i18n.T(c, i18n.ErrKeyConflict)).WithRequestID(GetRequestID(c)))
			return
		case stored != nil:
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(stored.status, stored.contentType, stored.body)
			c.Abort()
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		defer func() {
			status := rec.Status()
			if rec.Written() && status >= 200 && status < 300 {
				store.complete(key, &storedResponse{
					status:      status,
					contentType: rec.Header().Get("Content-Type"),
					body:        rec.body.Bytes(),
				})
				return
			}
			store.abandon(key)
		}()

		c.Next()
	}
}

// fingerprintRequest hashes the key with everything that makes a request distinct.
// The body is restored for the handler.
func fingerprintRequest(c *gin.Context, idemKey string) (uint64, error) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(io.LimitReader(c.Request.Body, maxIdempotentBody))
		if err != nil {
			return 0, err
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	d := xxhash.New()
	for _, part := range []string{idemKey, GetPrincipal(c), c.Request.Method, c.Request.URL.Path} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.Write(body)
	return d.Sum64(), nil
}

// recordingWriter tees the response body for storage.
type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
