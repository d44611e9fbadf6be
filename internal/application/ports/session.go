package ports

import (
	"context"

	"petconnect-api/internal/domain/user"
)

type SessionIssuer interface {
	Issue(u *user.User) (string, error)
	Verify(ctx context.Context, token string) (*user.User, error)
}
