package ports

import (
	"context"

	"github.com/google/uuid"

	"petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
)

type ResourceManager[T any] interface {
	List(ctx context.Context, f resource.Filter) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, r T, actorID user.UUID) (*T, error)
	Update(ctx context.Context, id uuid.UUID, patch T, actorID user.UUID) (*T, error)
	Delete(ctx context.Context, id uuid.UUID, actorID user.UUID) error
}

type ProductManager interface {
	ResourceManager[product.Product]
	UpdateStock(ctx context.Context, id uuid.UUID, stock int, actorID user.UUID) (*product.Product, error)
}
