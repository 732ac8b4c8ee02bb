package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashKey(t *testing.T, key string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAPIKeySet(t *testing.T) {
	keys := NewAPIKeySet([]string{"plain-key", "", hashKey(t, "hashed-key")})

	assert.Equal(t, 2, keys.Len())
	assert.True(t, keys.Valid("plain-key"))
	assert.True(t, keys.Valid("hashed-key"))
	assert.False(t, keys.Valid("plain-key "))
	assert.False(t, keys.Valid(""))

	var nilSet *APIKeySet
	assert.Zero(t, nilSet.Len())
	assert.False(t, nilSet.Valid("plain-key"))
}

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	keys := NewAPIKeySet([]string{"valid-key-123", hashKey(t, "bcrypt-key")})

	tests := []struct {
		name           string
		keys           *APIKeySet
		setupRequest   func(*http.Request)
		expectedStatus int
		mustContain    string
	}{
		{
			name:           "valid key in header",
			keys:           keys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "valid-key-123") },
			expectedStatus: http.StatusOK,
			mustContain:    "api-key:",
		},
		{
			name:           "valid key in query",
			keys:           keys,
			setupRequest:   func(req *http.Request) { req.URL.RawQuery = "api_key=valid-key-123" },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bcrypt hashed key",
			keys:           keys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "bcrypt-key") },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key",
			keys:           keys,
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			mustContain:    "API key is required",
		},
		{
			name:           "invalid key",
			keys:           keys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "nope") },
			expectedStatus: http.StatusUnauthorized,
			mustContain:    "Invalid API key",
		},
		{
			name:           "empty key set disables auth",
			keys:           NewAPIKeySet(nil),
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(APIKeyAuth(tt.keys))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetPrincipal(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mustContain != "" {
				assert.Contains(t, w.Body.String(), tt.mustContain)
			}
		})
	}
}

func TestAPIKeyPrincipal_DoesNotLeakKey(t *testing.T) {
	p := apiKeyPrincipal("super-secret-key")
	assert.True(t, strings.HasPrefix(p, "api-key:"))
	assert.NotContains(t, p, "super-secret-key")
	assert.Equal(t, p, apiKeyPrincipal("super-secret-key"))
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verifier := NewJWTVerifier("test-secret", "boltjoint-service")
	token, err := verifier.Issue("engineer@example.com", time.Hour)
	require.NoError(t, err)
	keys := NewAPIKeySet([]string{"valid-key"})

	tests := []struct {
		name              string
		keys              *APIKeySet
		verifier          *JWTVerifier
		setupRequest      func(*http.Request)
		expectedStatus    int
		expectedPrincipal string
	}{
		{
			name:              "bearer token",
			keys:              keys,
			verifier:          verifier,
			setupRequest:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			expectedStatus:    http.StatusOK,
			expectedPrincipal: "engineer@example.com",
		},
		{
			name:     "bad bearer token is not rescued by api key",
			keys:     keys,
			verifier: verifier,
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer garbage")
				r.Header.Set(APIKeyHeader, "valid-key")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "api key",
			keys:           keys,
			verifier:       verifier,
			setupRequest:   func(r *http.Request) { r.Header.Set(APIKeyHeader, "valid-key") },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bearer ignored without verifier",
			keys:           keys,
			setupRequest:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no credentials configured for api keys",
			keys:           NewAPIKeySet(nil),
			verifier:       verifier,
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Authenticate(tt.keys, tt.verifier))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetPrincipal(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedPrincipal != "" {
				assert.Equal(t, tt.expectedPrincipal, w.Body.String())
			}
			if w.Code == http.StatusUnauthorized {
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
