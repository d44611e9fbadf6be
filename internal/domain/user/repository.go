package user

import (
	"context"
)

// Repository returns (nil, nil) from the Fetch*/Update/SetActive methods when no row matches.
// CreateUser and UpdateUser report uniqueness violations with DuplicateError.
type Repository interface {
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	FetchActiveUserByEmail(ctx context.Context, email string) (*User, error)
	FetchActiveUsers(ctx context.Context, role Role) (Users, error)
	ExistsBy(ctx context.Context, field Field, value string, exclude UUID) (bool, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	SetActive(ctx context.Context, uuid UUID, active bool) (*User, error)
}
