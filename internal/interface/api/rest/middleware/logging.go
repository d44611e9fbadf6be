package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	maxLogBodySize = 1 << 12 // 4 KB
	maskedBody     = "<masked>"
)

// sensitive paths carry passwords or security answers.
var sensitive = []string{"/auth/", "/users"}

func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if isSensitive(c.Request.URL.Path) {
			body = maskedBody
		} else if c.Request.Body != nil {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, io.LimitReader(c.Request.Body, maxLogBodySize))
			body = buf.String()
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(buf.Bytes()), c.Request.Body))
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

func isSensitive(path string) bool {
	for _, p := range sensitive {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}
