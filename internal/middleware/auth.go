package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/dto"
	"github.com/guttosm/boltjoint-service/internal/i18n"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeySet holds accepted API keys. Entries that look like bcrypt hashes are
// compared with bcrypt; the rest in constant time.
type APIKeySet struct {
	plain  [][]byte
	hashed [][]byte
}

// NewAPIKeySet builds a key set from configured entries.
func NewAPIKeySet(keys []string) *APIKeySet {
	s := &APIKeySet{}
	for _, k := range keys {
		if k == "" {
			continue
		}
		if isBcryptHash(k) {
			s.hashed = append(s.hashed, []byte(k))
		} else {
			s.plain = append(s.plain, []byte(k))
		}
	}
	return s
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}

// Len returns the number of configured keys.
func (s *APIKeySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.plain) + len(s.hashed)
}

// Valid reports whether key matches a configured key.
func (s *APIKeySet) Valid(key string) bool {
	if s == nil || key == "" {
		return false
	}
	candidate := []byte(key)
	match := 0
	for _, k := range s.plain {
		match |= subtle.ConstantTimeCompare(k, candidate)
	}
	if match == 1 {
		return true
	}
	for _, h := range s.hashed {
		if bcrypt.CompareHashAndPassword(h, candidate) == nil {
			return true
		}
	}
	return false
}

// apiKeyPrincipal identifies a key in logs without exposing it.
func apiKeyPrincipal(key string) string {
	return "api-key:" + strconv.FormatUint(xxhash.Sum64String(key)&0xffffffff, 16)
}

// APIKeyAuth validates the X-API-Key header or api_key query parameter.
// An empty key set disables the check.
func APIKeyAuth(keys *APIKeySet) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keys.Len() == 0 {
			c.Next()
			return
		}
		if !checkAPIKey(c, keys) {
			return
		}
		c.Next()
	}
}

// Authenticate accepts either a bearer JWT, when verifier is set, or an API
// key. A request carrying a bearer token is judged on the token alone.
func Authenticate(keys *APIKeySet, verifier *JWTVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier != nil {
			if token, ok := bearerToken(c); ok {
				if !checkJWT(c, verifier, token) {
					return
				}
				c.Next()
				return
			}
		}
		if keys.Len() == 0 {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}
		if !checkAPIKey(c, keys) {
			return
		}
		c.Next()
	}
}

func checkAPIKey(c *gin.Context, keys *APIKeySet) bool {
	key := c.GetHeader(APIKeyHeader)
	if key == "" {
		key = c.Query(APIKeyQuery)
	}
	if key == "" {
		abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
		return false
	}
	if !keys.Valid(key) {
		abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
		return false
	}
	c.Set(string(PrincipalKey), apiKeyPrincipal(key))
	return true
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	c.Header("WWW-Authenticate", `Bearer realm="boltjoint"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, i18n.T(c, messageKey)).WithRequestID(GetRequestID(c)))
}
