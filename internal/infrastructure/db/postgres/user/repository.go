package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, uuid)
}

func (r *Repository) FetchActiveUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectActiveUserByEmail, email)
}

func (r *Repository) FetchActiveUsers(ctx context.Context, role user.Role) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectActiveUsers, role.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	us := make(Users, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(us), nil
}

func (r *Repository) ExistsBy(ctx context.Context, field user.Field, value string, exclude user.UUID) (bool, error) {
	q, ok := existsQueries[field]
	if !ok {
		return false, fmt.Errorf("no uniqueness query for field %q", field)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, q, value, exclude).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	args := append(writeArgs(req), req.Active)

	u, err := scanUser(r.db.QueryRow(ctx, InsertUser, args...))
	if err != nil {
		return nil, mapWriteError(err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	args := append(writeArgs(req), req.UUID)

	u, err := scanUser(r.db.QueryRow(ctx, UpdateUserByUUID, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapWriteError(err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) SetActive(ctx context.Context, uuid user.UUID, active bool) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SetActiveByUUID, active, uuid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) fetchOne(ctx context.Context, q string, arg any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,
		&u.Phone,
		&u.Location,
		&u.CPF,
		&u.CNPJ,
		&u.CRMV,
		&u.Responsible,
		&u.StoreType,
		&u.OperatingHours,
		&u.AnswerPet,
		&u.AnswerCar,
		&u.AnswerFriend,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func mapWriteError(err error) error {
	if !postgres.IsPgUniqueViolation(err) {
		return err
	}
	if f, ok := constraintFields[postgres.ConstraintName(err)]; ok {
		return user.DuplicateError(f)
	}
	return errs.Conflict("user already registered")
}
