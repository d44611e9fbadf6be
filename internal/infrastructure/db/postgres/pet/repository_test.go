package pet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/resource"
)

var petCols = []string{"id", "owner_id", "name", "type", "breed", "age", "weight", "image_url", "active", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_FetchActive(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	ts := time.Now().UTC()

	tests := []struct {
		name   string
		filter resource.Filter
		query  string
		args   []any
	}{
		{name: "all", filter: resource.Filter{}, query: SelectActivePets},
		{name: "by owner", filter: resource.Filter{OwnerID: &owner}, query: SelectActivePetsByOwner, args: []any{owner}},
		{name: "by type", filter: resource.Filter{Category: "GATO"}, query: SelectActivePetsByType, args: []any{"GATO"}},
		{name: "owner wins", filter: resource.Filter{OwnerID: &owner, Category: "GATO"}, query: SelectActivePetsByOwner, args: []any{owner}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			rows := pgxmock.NewRows(petCols).
				AddRow(uuid.New(), owner, "Mia", "GATO", "", 2, 3.5, "", true, ts, ts)

			exp := mock.ExpectQuery(tt.query)
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args...)
			}
			exp.WillReturnRows(rows)

			ps, err := NewRepository(mock).FetchActive(ctx, tt.filter)
			require.NoError(t, err)
			require.Len(t, ps, 1)
			assert.Equal(t, domain.TypeGato, ps[0].Type)
			assert.Equal(t, owner, ps[0].OwnerID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)
	ts := time.Now().UTC()

	p := domain.Pet{
		Header: resource.Header{ID: uuid.New(), OwnerID: uuid.New(), UpdatedAt: ts},
		Name:   "Max",
		Type:   domain.TypeCachorro,
	}
	mock.ExpectQuery(UpdatePetOwned).
		WithArgs("Max", "CACHORRO", "", 0, 0.0, "", ts, p.ID, p.OwnerID).
		WillReturnRows(pgxmock.NewRows(petCols))

	got, err := NewRepository(mock).Update(ctx, p)
	require.NoError(t, err)
	assert.Nil(t, got, "no row owned by the caller")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Deactivate(t *testing.T) {
	ctx := context.Background()
	id, owner := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "owned", affected: 1, expected: true},
		{name: "not owned or missing", affected: 0, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectExec(DeactivatePetOwned).
				WithArgs(id, owner).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := NewRepository(mock).Deactivate(ctx, id, owner)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
