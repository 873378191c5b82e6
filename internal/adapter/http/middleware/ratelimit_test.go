package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"charity-ledger-gateway/internal/adapter/http/middleware"
	redisStore "charity-ledger-gateway/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store *redisStore.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	r.GET("/test", middleware.RateLimiter(store, "test", rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	// Use up the limit
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}

	// 4th request should be blocked
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_KeyedByClientIP(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	// First client uses up the limit.
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		req.RemoteAddr = "10.0.0.1:40000"
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}

	// A different client address gets an independent counter.
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	req.RemoteAddr = "10.0.0.2:40000"
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestRateLimiter_DegradesOpenWhenStoreDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	mr.Close()

	// With the store unreachable every request proceeds unthrottled.
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code, "request %d should degrade open", i+1)
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(120), rules["reads"].Limit)
	assert.Equal(t, int64(60), rules["dashboard"].Limit)
	assert.Equal(t, int64(10), rules["writes"].Limit)
	assert.Equal(t, int64(10), rules["session"].Limit)
	assert.Equal(t, int64(10), rules["media"].Limit)
}
