//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/guttosm/boltjoint-service/config"
	"github.com/guttosm/boltjoint-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lapBody = `{"bolt_diameter": 16, "plate_thickness_1": 10, "plate_thickness_2": 18, "factored_load": 150,
	"bolt_grade": 4.6, "plate_grade": 410, "edge_distance": 30, "pitch": 40, "threaded_planes": 1}`

func itoa(i int) string { return strconv.Itoa(i) }

func postLap(a *App, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/joints/lap", strings.NewReader(lapBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func TestInitializeApp(t *testing.T) {
	a, err := InitializeApp(testConfig())
	require.NoError(t, err)
	defer a.Close(context.Background())

	w := postLap(a, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"number_of_bolts":6`)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestInitializeApp_Auth(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Enabled = true
	cfg.Auth.APIKeys = []string{"app-test-key"}

	a, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer a.Close(context.Background())

	assert.Equal(t, http.StatusUnauthorized, postLap(a, nil).Code)
	assert.Equal(t, http.StatusOK, postLap(a, map[string]string{middleware.APIKeyHeader: "app-test-key"}).Code)
}

func TestInitializeApp_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Enabled = true

	a, err := InitializeApp(cfg)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, config.ErrNoCredentials)
}

func TestApp_CloseTwice(t *testing.T) {
	a, err := InitializeApp(testConfig())
	require.NoError(t, err)

	a.Close(context.Background())
	assert.NotPanics(t, func() { a.Close(context.Background()) })
}
