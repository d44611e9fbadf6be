package product

import (
	"context"

	"github.com/google/uuid"

	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
)

type Repository interface {
	resource.Repository[Product]
	// UpdateStock reports false when no product with id is owned by ownerID.
	UpdateStock(ctx context.Context, id uuid.UUID, ownerID user.UUID, stock int) (bool, error)
}
