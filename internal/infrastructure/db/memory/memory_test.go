package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
)

func TestUserRepository_Uniqueness(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	ana, err := r.CreateUser(ctx, user.User{Email: "ana@example.com", CPF: "1", Active: true})
	require.NoError(t, err)
	bia, err := r.CreateUser(ctx, user.User{Email: "bia@example.com", Active: true})
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, user.User{Email: "ana@example.com"})
	assert.ErrorIs(t, err, errs.ErrConflict)

	bia.CPF = "1"
	_, err = r.UpdateUser(ctx, *bia)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.EqualError(t, err, "cpf already registered")

	ana.Name = "Ana"
	_, err = r.UpdateUser(ctx, *ana)
	assert.NoError(t, err, "a user never collides with itself")

	taken, err := r.ExistsBy(ctx, user.FieldEmail, "ana@example.com", ana.UUID)
	require.NoError(t, err)
	assert.False(t, taken)
	taken, err = r.ExistsBy(ctx, user.FieldEmail, "ana@example.com", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	_, err = r.SetActive(ctx, ana.UUID, false)
	require.NoError(t, err)
	u, err := r.FetchActiveUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = r.SetActive(ctx, uuid.New(), true)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestResourceRepository_OwnerScopedWrites(t *testing.T) {
	ctx := context.Background()
	r := NewPetRepository()
	owner, stranger := uuid.New(), uuid.New()

	p, err := r.Create(ctx, pet.Pet{
		Header: resource.Header{OwnerID: owner, Active: true},
		Name:   "Rex",
		Type:   pet.TypeCachorro,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, p.ID)

	hijack := *p
	hijack.OwnerID = stranger
	hijack.Name = "Stolen"
	got, err := r.Update(ctx, hijack)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err := r.Deactivate(ctx, p.ID, stranger)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Deactivate(ctx, p.ID, owner)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := r.FetchByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", stored.Name)
	assert.False(t, stored.Active)

	list, err := r.FetchActive(ctx, resource.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductRepository_UpdateStock(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepository()
	owner := uuid.New()

	p, err := r.Create(ctx, product.Product{
		Header:   resource.Header{OwnerID: owner, Active: true},
		Name:     "Ração",
		Price:    decimal.NewFromInt(10),
		Stock:    5,
		Category: "food",
	})
	require.NoError(t, err)

	_, err = r.UpdateStock(ctx, p.ID, owner, -1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	ok, err := r.UpdateStock(ctx, p.ID, uuid.New(), 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.UpdateStock(ctx, p.ID, owner, 9)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.FetchByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Stock)
}
