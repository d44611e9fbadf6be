package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/user"
)

type fakeSessions struct {
	VerifyFunc func(ctx context.Context, token string) (*user.User, error)
}

func (f *fakeSessions) Issue(u *user.User) (string, error) { return "", nil }
func (f *fakeSessions) Verify(ctx context.Context, token string) (*user.User, error) {
	return f.VerifyFunc(ctx, token)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.New()

	sessions := &fakeSessions{VerifyFunc: func(ctx context.Context, token string) (*user.User, error) {
		switch token {
		case "good":
			return &user.User{UUID: id, Role: user.RoleTutor, Active: true}, nil
		case "boom":
			return nil, assert.AnError
		}
		return nil, errs.Unauthorized("invalid or expired token")
	}}

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{name: "missing header", header: "", code: http.StatusUnauthorized, body: "missing Authorization header"},
		{name: "not bearer", header: "Basic abc", code: http.StatusUnauthorized, body: "invalid token format"},
		{name: "rejected token", header: "Bearer bad", code: http.StatusUnauthorized, body: "invalid or expired token"},
		{name: "store failure", header: "Bearer boom", code: http.StatusInternalServerError, body: "internal error"},
		{name: "ok", header: "Bearer good", code: http.StatusOK, body: id.String()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/me", AuthMiddleware(sessions), func(c *gin.Context) {
				a, ok := Actor(c)
				require.True(t, ok)
				assert.Equal(t, user.RoleTutor, a.Role)
				c.String(http.StatusOK, a.ID.String())
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.code, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.body)
		})
	}
}

func TestRateLimiter_LocalFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(nil, Limit(1, 1, time.Minute), zap.NewNop())
	r := gin.New()
	r.POST("/login", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := do()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestLocalLimiter_EvictsIdleKeys(t *testing.T) {
	l := newLocalLimiter()
	clock := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return clock }
	limit := Limit(2, 2, time.Minute)

	for i := 0; i < 50; i++ {
		require.Equal(t, 1, l.allow(fmt.Sprintf("ratelimit:ip:198.51.100.%d:/login", i), limit).Allowed)
	}
	assert.Len(t, l.limiters, 50)

	busy := "ratelimit:ip:203.0.113.7:/login"
	l.allow(busy, limit)
	l.allow(busy, limit)
	assert.Equal(t, 0, l.allow(busy, limit).Allowed)

	clock = clock.Add(30 * time.Second)
	l.allow(busy, limit)
	assert.Len(t, l.limiters, 51, "no sweep before the idle window")

	clock = clock.Add(45 * time.Second)
	l.allow(busy, limit)
	assert.Len(t, l.limiters, 1, "idle keys are dropped, the active one stays")
}

func TestRequestLogGin_MasksAuthBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogGin(zap.New(core), nil))
	r.POST("/api/v1/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/v1/pets", func(c *gin.Context) {
		b, _ := c.GetRawData()
		c.String(http.StatusCreated, string(b))
	})

	for _, path := range []string{"/api/v1/auth/login", "/api/v1/pets"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"password":"secret","name":"Rex"}`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if path == "/api/v1/pets" {
			assert.Equal(t, `{"password":"secret","name":"Rex"}`, rr.Body.String(), "body still readable by handler")
		}
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, maskedBody, entries[0].ContextMap()["body"])
	assert.Contains(t, entries[1].ContextMap()["body"], "Rex")
}
