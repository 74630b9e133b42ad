package mw

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"site-uptime-backend/internal/logger"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestLog attaches a request-scoped logger to the request context, then
// logs and measures the request once it completes.
func RequestLog(base logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		l := base.With().Str(logger.FieldRequestID, requestID).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())

		evt := l.Info()
		if status >= 500 {
			evt = l.Error()
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}
		evt.Str(logger.FieldHttpMethod, c.Request.Method).
			Str(logger.FieldHttpPath, c.Request.URL.Path).
			Int(logger.FieldHttpStatus, status).
			Dur(logger.FieldDuration, elapsed).
			Msg("request completed")
	}
}
