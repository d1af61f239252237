//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"dealhub/internal/handler/middleware"
	"dealhub/internal/pkg/config"
	"dealhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg config.RateLimitConfig) *gin.Engine {
		r := gin.New()
		r.GET("/limited", middleware.NewIPRateLimiter(cfg).RateLimit(), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	t.Run("burst is allowed then throttled", func(t *testing.T) {
		r := newRouter(config.RateLimitConfig{LocationRPS: 0.001, LocationBurst: 2})

		for i := 0; i < 2; i++ {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, "")
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("clients are limited separately", func(t *testing.T) {
		r := newRouter(config.RateLimitConfig{LocationRPS: 0.001, LocationBurst: 1})

		first := httptest.PerformRawRequestWithHeaders(t, r, http.MethodGet, "/limited", map[string]string{"X-Forwarded-For": "10.0.0.1"})
		assert.Equal(t, http.StatusNoContent, first.Code)
		again := httptest.PerformRawRequestWithHeaders(t, r, http.MethodGet, "/limited", map[string]string{"X-Forwarded-For": "10.0.0.1"})
		assert.Equal(t, http.StatusTooManyRequests, again.Code)
		other := httptest.PerformRawRequestWithHeaders(t, r, http.MethodGet, "/limited", map[string]string{"X-Forwarded-For": "10.0.0.2"})
		assert.Equal(t, http.StatusNoContent, other.Code)
	})

	t.Run("non-positive burst still admits one request", func(t *testing.T) {
		r := newRouter(config.RateLimitConfig{LocationRPS: 0.001, LocationBurst: 0})

		assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, "").Code)
		assert.Equal(t, http.StatusTooManyRequests, httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, "").Code)
	})
}
