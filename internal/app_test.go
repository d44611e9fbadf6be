package internal

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"petconnect-api/config"
	"petconnect-api/internal/infrastructure/metrics"
	"petconnect-api/internal/interface/api/rest/middleware"
)

func TestNewRouter_ForwardedForAndRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		proxies []string
		passed  int
	}{
		{name: "untrusted peer cannot pick its ip", proxies: nil, passed: 2},
		{name: "trusted proxy forwards client ips", proxies: []string{"203.0.113.7"}, passed: 50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, err := newRouter(
				config.APP{TrustedProxies: tt.proxies},
				zap.NewNop(),
				metrics.NewCounter(prometheus.NewRegistry()),
			)
			require.NoError(t, err)

			rl := middleware.NewRateLimiter(nil, middleware.Limit(2, 2, time.Minute), zap.NewNop())
			r.POST("/login", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

			passed, limited := 0, 0
			for i := 0; i < 50; i++ {
				req := httptest.NewRequest(http.MethodPost, "/login", nil)
				req.RemoteAddr = "203.0.113.7:4321"
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
				rr := httptest.NewRecorder()
				r.ServeHTTP(rr, req)

				switch rr.Code {
				case http.StatusOK:
					passed++
				case http.StatusTooManyRequests:
					limited++
				}
			}

			assert.Equal(t, tt.passed, passed)
			assert.Equal(t, 50-tt.passed, limited)
		})
	}
}

func TestNewRouter_InvalidTrustedProxy(t *testing.T) {
	_, err := newRouter(config.APP{TrustedProxies: []string{"not-an-ip"}}, zap.NewNop(), nil)
	assert.Error(t, err)
}
