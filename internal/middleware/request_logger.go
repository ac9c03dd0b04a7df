package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger emits one structured line per request. The level follows
// the status class: 5xx error, 4xx warn, otherwise info.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		log := logger.Logger()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event = event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("bytes", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if route := c.FullPath(); route != "" {
			event = event.Str("route", route)
		}
		if userID := GetUserID(c); userID != "" {
			event = event.Str("user_id", userID)
		}
		event.Msg("HTTP request")
	}
}
