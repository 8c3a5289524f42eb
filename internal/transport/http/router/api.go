package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-users-posts-api/internal/core/config"
	"go-users-posts-api/internal/core/database"
	"go-users-posts-api/internal/transport/http/handler"
	mdw "go-users-posts-api/internal/transport/http/middleware"
	resp "go-users-posts-api/internal/transport/http/response"
)

func NewAPIEngine(l *zap.Logger, st *database.Store, lim config.Limits) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(lim.RateRPS), lim.RateBurst),
	)
	if lim.PerIPRPS > 0 {
		r.Use(mdw.RateLimitPerIP(rate.Limit(lim.PerIPRPS), lim.PerIPBurst))
	}
	r.Use(
		mdw.ConcurrencyLimit(lim.MaxConcurrent),
		mdw.MaxBodyBytes(lim.MaxBodyBytes),
		mdw.Timeout(time.Duration(lim.TimeoutSec)*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 前端跨域直连，全放开
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend server is running!")
	})

	r.GET("/health", func(c *gin.Context) {
		if _, err := st.Acquire(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, resp.HealthDown(err))
			return
		}
		c.JSON(http.StatusOK, resp.HealthOK())
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	handler.MountUserActions(api, st)
	handler.MountPostActions(api, st)

	return r
}
