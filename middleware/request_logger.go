package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkumar84/Insurance-Dashboard/pkg/logger"
)

// RequestLogger writes one access log line per request. The level follows
// the status class: error for 5xx, warn for 4xx, info otherwise.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"latency_ms", time.Since(start).Milliseconds(),
			"bytes", c.Writer.Size(),
		}
		if route := c.FullPath(); route != "" && route != path {
			attrs = append(attrs, "route", route)
		}
		if query != "" {
			attrs = append(attrs, "query", query)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		ctx := c.Request.Context()
		logger.WithContext(ctx).Log(ctx, level, "request completed", attrs...)
	}
}
