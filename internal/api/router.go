package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"site-uptime-backend/config"
	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/metrics"
	"site-uptime-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg config.ServerConfig, handler *Handler, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestLog(log))

	limiter := mw.NewClientLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, 10*time.Minute)
	rateLimiter := mw.RateLimit(limiter, cfg.RequestIPHeader)

	// Finished reports never change, so their files can be served from memory.
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	caching := mw.CacheFiles(cache.New(ttl, 2*ttl), "text/csv", ttl)

	r.GET("/healthz", handler.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/trigger_report", handler.TriggerReport)
		api.GET("/get_report/:report_id", caching, handler.GetReport)
	}

	return r
}
