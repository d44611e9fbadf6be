package resource

import (
	"context"

	"github.com/google/uuid"

	"petconnect-api/internal/domain/user"
)

// Repository returns (nil, nil) from FetchByID and Update when no row matches.
// Update and Deactivate only touch a row whose owner is ownerID.
type Repository[T any] interface {
	FetchByID(ctx context.Context, id uuid.UUID) (*T, error)
	FetchActive(ctx context.Context, f Filter) ([]T, error)
	Create(ctx context.Context, r T) (*T, error)
	Update(ctx context.Context, r T) (*T, error)
	Deactivate(ctx context.Context, id uuid.UUID, ownerID user.UUID) (bool, error)
}
