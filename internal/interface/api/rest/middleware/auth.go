package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"petconnect-api/internal/application/guard"
	"petconnect-api/internal/application/ports"
	"petconnect-api/internal/domain/errs"
)

const (
	CtxUserRole = "userRole"
	CtxUserID   = "userID"
	CtxActor    = "actor"
)

// AuthMiddleware resolves the bearer token to an active user and stores it as
// the request actor.
func AuthMiddleware(sessions ports.SessionIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader || tokenStr == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		u, err := sessions.Verify(c.Request.Context(), tokenStr)
		if err != nil {
			status := http.StatusUnauthorized
			msg := err.Error()
			if errs.Kind(err) == nil {
				status = http.StatusInternalServerError
				msg = "internal error"
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		actor := guard.ActorOf(u)
		c.Set(CtxActor, actor)
		c.Set(CtxUserRole, u.Role.String())
		c.Set(CtxUserID, u.UUID.String())

		c.Next()
	}
}

// Actor returns the actor stored by AuthMiddleware.
func Actor(c *gin.Context) (guard.Actor, bool) {
	v, ok := c.Get(CtxActor)
	if !ok {
		return guard.Actor{}, false
	}
	a, ok := v.(guard.Actor)
	return a, ok
}
