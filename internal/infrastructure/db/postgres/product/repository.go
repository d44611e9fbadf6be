package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, SelectProductByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p)
}

func (r *Repository) FetchActive(ctx context.Context, f resource.Filter) ([]domain.Product, error) {
	q, args := SelectActiveProducts, []any{}
	switch {
	case f.OwnerID != nil:
		q, args = SelectActiveProductsByOwner, []any{*f.OwnerID}
	case f.Category != "":
		q, args = SelectActiveProductsByCategory, []any{f.Category}
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ps := make([]domain.Product, 0)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		p, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		ps = append(ps, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ps, nil
}

func (r *Repository) Create(ctx context.Context, req domain.Product) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, InsertProduct,
		req.OwnerID, req.Name, req.Description, req.Price.StringFixed(2), req.Stock, req.Category, req.ImageURL,
		req.Active, req.CreatedAt, req.UpdatedAt,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(p)
}

func (r *Repository) Update(ctx context.Context, req domain.Product) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, UpdateProductOwned,
		req.Name, req.Description, req.Price.StringFixed(2), req.Stock, req.Category, req.ImageURL, req.UpdatedAt,
		req.ID, req.OwnerID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p)
}

func (r *Repository) UpdateStock(ctx context.Context, id uuid.UUID, ownerID user.UUID, stock int) (bool, error) {
	if stock < 0 {
		return false, domain.ErrNegativeStock
	}

	tag, err := r.db.Exec(ctx, UpdateProductStockOwned, stock, id, ownerID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID, ownerID user.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeactivateProductOwned, id, ownerID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func scanProduct(row pgx.Row) (*Product, error) {
	p := new(Product)
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Category,
		&p.ImageURL,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return p, nil
}
