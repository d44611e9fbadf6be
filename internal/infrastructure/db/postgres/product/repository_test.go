package product

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petconnect-api/internal/domain/errs"
	domain "petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
)

var productCols = []string{"id", "owner_id", "name", "description", "price", "stock", "category", "image_url", "active", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)
	ts := time.Now().UTC()
	id, owner := uuid.New(), uuid.New()

	req := domain.Product{
		Header:   resource.Header{OwnerID: owner, Active: true, CreatedAt: ts, UpdatedAt: ts},
		Name:     "Ração",
		Price:    decimal.RequireFromString("89.9"),
		Stock:    5,
		Category: "food",
	}
	mock.ExpectQuery(InsertProduct).
		WithArgs(owner, "Ração", "", "89.90", 5, "food", "", true, ts, ts).
		WillReturnRows(pgxmock.NewRows(productCols).
			AddRow(id, owner, "Ração", "", "89.90", 5, "food", "", true, ts, ts))

	p, err := NewRepository(mock).Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("89.9")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchByID_BadPrice(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)
	id := uuid.New()
	ts := time.Now().UTC()

	mock.ExpectQuery(SelectProductByID).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(productCols).
			AddRow(id, uuid.New(), "x", "", "NaN?", 1, "c", "", true, ts, ts))

	_, err := NewRepository(mock).FetchByID(ctx, id)
	assert.Error(t, err)
}

func TestRepository_UpdateStock(t *testing.T) {
	ctx := context.Background()
	id, owner := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		stock    int
		affected int64
		expected bool
		kind     error
	}{
		{name: "owned", stock: 3, affected: 1, expected: true},
		{name: "not owned", stock: 3, affected: 0},
		{name: "negative", stock: -3, kind: errs.ErrInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			if tt.kind == nil {
				mock.ExpectExec(UpdateProductStockOwned).
					WithArgs(tt.stock, id, owner).
					WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			}

			ok, err := NewRepository(mock).UpdateStock(ctx, id, owner, tt.stock)
			if tt.kind != nil {
				assert.ErrorIs(t, err, tt.kind)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
