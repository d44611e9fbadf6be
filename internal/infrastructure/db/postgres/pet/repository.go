package pet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) resource.Repository[domain.Pet] {
	return &Repository{db: db}
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	p, err := scanPet(r.db.QueryRow(ctx, SelectPetByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchActive(ctx context.Context, f resource.Filter) ([]domain.Pet, error) {
	q, args := SelectActivePets, []any{}
	switch {
	case f.OwnerID != nil:
		q, args = SelectActivePetsByOwner, []any{*f.OwnerID}
	case f.Category != "":
		q, args = SelectActivePetsByType, []any{f.Category}
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ps := make([]domain.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, *fromDBModel(p))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ps, nil
}

func (r *Repository) Create(ctx context.Context, req domain.Pet) (*domain.Pet, error) {
	p, err := scanPet(r.db.QueryRow(ctx, InsertPet,
		req.OwnerID, req.Name, string(req.Type), req.Breed, req.Age, req.Weight, req.ImageURL,
		req.Active, req.CreatedAt, req.UpdatedAt,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) Update(ctx context.Context, req domain.Pet) (*domain.Pet, error) {
	p, err := scanPet(r.db.QueryRow(ctx, UpdatePetOwned,
		req.Name, string(req.Type), req.Breed, req.Age, req.Weight, req.ImageURL, req.UpdatedAt,
		req.ID, req.OwnerID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID, ownerID user.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeactivatePetOwned, id, ownerID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func scanPet(row pgx.Row) (*Pet, error) {
	p := new(Pet)
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Type,
		&p.Breed,
		&p.Age,
		&p.Weight,
		&p.ImageURL,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return p, nil
}
