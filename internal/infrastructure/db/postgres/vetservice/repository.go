package vetservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
	domain "petconnect-api/internal/domain/vetservice"
	"petconnect-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) resource.Repository[domain.Service] {
	return &Repository{db: db}
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, SelectServiceByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s)
}

func (r *Repository) FetchActive(ctx context.Context, f resource.Filter) ([]domain.Service, error) {
	q, args := SelectActiveServices, []any{}
	switch {
	case f.OwnerID != nil:
		q, args = SelectActiveServicesByOwner, []any{*f.OwnerID}
	case f.Category != "":
		q, args = SelectActiveServicesByCategory, []any{f.Category}
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ss := make([]domain.Service, 0)
	for rows.Next() {
		m, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		s, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		ss = append(ss, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ss, nil
}

func (r *Repository) Create(ctx context.Context, req domain.Service) (*domain.Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, InsertService,
		req.OwnerID, req.Name, req.Description, req.Price.StringFixed(2), req.Category, req.ImageURL,
		req.Active, req.CreatedAt, req.UpdatedAt,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(s)
}

func (r *Repository) Update(ctx context.Context, req domain.Service) (*domain.Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, UpdateServiceOwned,
		req.Name, req.Description, req.Price.StringFixed(2), req.Category, req.ImageURL, req.UpdatedAt,
		req.ID, req.OwnerID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s)
}

func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID, ownerID user.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeactivateServiceOwned, id, ownerID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func scanService(row pgx.Row) (*Service, error) {
	s := new(Service)
	if err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Name,
		&s.Description,
		&s.Price,
		&s.Category,
		&s.ImageURL,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return s, nil
}
