package ports

import (
	"context"

	"petconnect-api/internal/application/guard"
	"petconnect-api/internal/domain/user"
)

type IdentityDirectory interface {
	Register(ctx context.Context, candidate user.User, password string) (*user.User, error)
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
	UpdateProfile(ctx context.Context, targetID user.UUID, changes user.User, newPassword string) (*user.User, error)
	SetActive(ctx context.Context, targetID user.UUID, active bool) (*user.User, error)
	CheckSecurityAnswer(ctx context.Context, email, answer string) error
	ResetPassword(ctx context.Context, email, answer, newPassword string) error

	EditUser(ctx context.Context, actor guard.Actor, targetID user.UUID, changes user.User, newPassword string) (*user.User, error)
	DeactivateUser(ctx context.Context, actor guard.Actor, targetID user.UUID) (*user.User, error)
	ActivateUser(ctx context.Context, actor guard.Actor, targetID user.UUID) (*user.User, error)
	DeactivateSelf(ctx context.Context, actorID user.UUID) error

	GetByID(ctx context.Context, id user.UUID) (*user.User, error)
	ListActive(ctx context.Context, role user.Role) (user.Users, error)
}
