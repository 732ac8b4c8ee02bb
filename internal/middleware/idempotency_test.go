package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotentRouter(store *IdempotencyStore, calls *atomic.Int32, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery(), Idempotency(store))
	handler := func(c *gin.Context) {
		n := calls.Add(1)
		body, _ := c.GetRawData()
		c.JSON(status, gin.H{"call": n, "echo": string(body)})
	}
	router.POST("/api/joints/lap", handler)
	router.GET("/api/joints/lap", handler)
	router.POST("/panic", func(c *gin.Context) {
		calls.Add(1)
		panic("boom")
	})
	return router
}

func post(router *gin.Engine, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_Replay(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	defer store.Stop()
	var calls atomic.Int32
	router := idempotentRouter(store, &calls, http.StatusOK)

	first := post(router, "/api/joints/lap", "key-1", `{"factored_load":150}`)
	second := post(router, "/api/joints/lap", "key-1", `{"factored_load":150}`)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, "application/json; charset=utf-8", second.Header().Get("Content-Type"))
	assert.Equal(t, int32(1), calls.Load())
}

func TestIdempotency_DistinctRequests(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	defer store.Stop()
	var calls atomic.Int32
	router := idempotentRouter(store, &calls, http.StatusOK)

	post(router, "/api/joints/lap", "key-1", `{"factored_load":150}`)
	post(router, "/api/joints/lap", "key-1", `{"factored_load":300}`)
	post(router, "/api/joints/lap", "key-2", `{"factored_load":150}`)
	post(router, "/api/joints/lap", "", `{"factored_load":150}`)

	assert.Equal(t, int32(4), calls.Load())
}

func TestIdempotency_SkipsGet(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	defer store.Stop()
	var calls atomic.Int32
	router := idempotentRouter(store, &calls, http.StatusOK)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/joints/lap", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestIdempotency_ErrorsAreNotStored(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	defer store.Stop()
	var calls atomic.Int32
	router := idempotentRouter(store, &calls, http.StatusUnprocessableEntity)

	post(router, "/api/joints/lap", "key-1", `{}`)
	post(router, "/api/joints/lap", "key-1", `{}`)

	assert.Equal(t, int32(2), calls.Load())
	assert.Zero(t, store.Len())
}

func TestIdempotency_PanicReleasesKey(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	defer store.Stop()
	var calls atomic.Int32
	router := idempotentRouter(store, &calls, http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, post(router, "/panic", "key-1", `{}`).Code)
	assert.Equal(t, http.StatusInternalServerError, post(router, "/panic", "key-1", `{}`).Code)
	assert.Equal(t, int32(2), calls.Load())
}

func TestIdempotency_InFlightConflict(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	defer store.Stop()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(store))

	release := make(chan struct{})
	entered := make(chan struct{})
	router.POST("/slow", func(c *gin.Context) {
		close(entered)
		<-release
		c.Status(http.StatusOK)
	})

	done := make(chan int)
	go func() {
		done <- post(router, "/slow", "key-1", `{}`).Code
	}()
	<-entered

	assert.Equal(t, http.StatusConflict, post(router, "/slow", "key-1", `{}`).Code)
	close(release)
	assert.Equal(t, http.StatusOK, <-done)
}

func TestIdempotency_NilStore(t *testing.T) {
	var calls atomic.Int32
	router := idempotentRouter(nil, &calls, http.StatusOK)

	post(router, "/api/joints/lap", "key-1", `{}`)
	post(router, "/api/joints/lap", "key-1", `{}`)
	assert.Equal(t, int32(2), calls.Load())
}
