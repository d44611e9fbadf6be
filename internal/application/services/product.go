package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"petconnect-api/internal/application/guard"
	"petconnect-api/internal/application/ports"
	"petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
)

type ProductManager struct {
	*ResourceManager[product.Product]

	products product.Repository
}

func NewProductManager(
	repo product.Repository,
	users user.Repository,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) *ProductManager {
	return &ProductManager{
		ResourceManager: NewResourceManager[product.Product](resource.KindProduct, repo, users, events, mCounter),
		products:        repo,
	}
}

func (m *ProductManager) UpdateStock(ctx context.Context, id uuid.UUID, stock int, actorID user.UUID) (_ *product.Product, err error) {
	ctx, span := startSpan(ctx, "product.update_stock")
	defer func() { endSpan(span, err) }()

	if _, err = m.owned(ctx, id, actorID, guard.ActionUpdateStock); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, product.ErrNegativeStock
	}

	ok, err := m.products.UpdateStock(ctx, id, actorID, stock)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, m.notFound()
	}

	m.count("product_stock_updated_total")
	m.emit(ctx, string(resource.KindProduct), "stock_updated", id.String(), actorID.String())

	return m.GetByID(ctx, id)
}
