package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/infrastructure/jwt"
)

const msgInvalidToken = "invalid or expired token"

type userLookup interface {
	GetByID(ctx context.Context, id user.UUID) (*user.User, error)
}

// SessionService issues bearer tokens and turns them back into active users.
type SessionService struct {
	jwt   *jwt.Service
	users userLookup
	ttl   time.Duration
}

func NewSessionService(jwtService *jwt.Service, users userLookup, ttl time.Duration) *SessionService {
	return &SessionService{jwt: jwtService, users: users, ttl: ttl}
}

func (s *SessionService) Issue(u *user.User) (string, error) {
	return s.jwt.GenerateJWT(u.UUID.String(), u.Role.String(), s.ttl)
}

// Verify re-resolves the token subject; a deactivated user's tokens stop
// working immediately.
func (s *SessionService) Verify(ctx context.Context, token string) (*user.User, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, errs.Unauthorized(msgInvalidToken)
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errs.Unauthorized(msgInvalidToken)
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errs.Kind(err) == errs.ErrNotFound {
			return nil, errs.Unauthorized(msgInvalidToken)
		}
		return nil, err
	}
	if !u.Active {
		return nil, errs.Unauthorized(msgInvalidToken)
	}

	return u, nil
}
