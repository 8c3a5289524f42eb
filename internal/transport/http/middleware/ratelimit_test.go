package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newLimitedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func hit(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_RejectsWhenExhausted(t *testing.T) {
	r := newLimitedRouter(RateLimit(rate.Limit(0.001), 1))

	require.Equal(t, http.StatusOK, hit(r, "10.0.0.1:1234").Code)
	w := hit(r, "10.0.0.2:1234")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
}

func TestRateLimitPerIP_IsolatesClients(t *testing.T) {
	// 桶按 IP 独立：同一 IP 第二次被拒，另一 IP 不受影响
	r := newLimitedRouter(RateLimitPerIP(rate.Limit(0.001), 1))

	require.Equal(t, http.StatusOK, hit(r, "10.0.0.1:1111").Code)
	w := hit(r, "10.0.0.1:2222")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.9:1111").Code)
}
