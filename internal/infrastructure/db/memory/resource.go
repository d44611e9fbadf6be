package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/domain/vetservice"
)

// ResourceRepository stores any owned resource. category extracts the value
// matched by Filter.Category.
type ResourceRepository[T resource.Owned[T]] struct {
	mu       sync.RWMutex
	rows     map[uuid.UUID]T
	category func(T) string
	now      func() time.Time
}

func newResourceRepository[T resource.Owned[T]](category func(T) string) *ResourceRepository[T] {
	return &ResourceRepository[T]{
		rows:     make(map[uuid.UUID]T),
		category: category,
		now:      time.Now,
	}
}

func NewPetRepository() *ResourceRepository[pet.Pet] {
	return newResourceRepository(func(p pet.Pet) string { return string(p.Type) })
}

func NewVetServiceRepository() *ResourceRepository[vetservice.Service] {
	return newResourceRepository(func(s vetservice.Service) string { return s.Category })
}

func (r *ResourceRepository[T]) FetchByID(_ context.Context, id uuid.UUID) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *ResourceRepository[T]) FetchActive(_ context.Context, f resource.Filter) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0)
	for _, row := range r.rows {
		h := row.Head()
		if !h.Active {
			continue
		}
		switch {
		case f.OwnerID != nil:
			if h.OwnerID != *f.OwnerID {
				continue
			}
		case f.Category != "":
			if r.category(row) != f.Category {
				continue
			}
		}
		out = append(out, row)
	}
	slices.SortFunc(out, func(a, b T) int {
		ha, hb := a.Head(), b.Head()
		if c := ha.CreatedAt.Compare(hb.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(ha.ID.String(), hb.ID.String())
	})

	return out, nil
}

func (r *ResourceRepository[T]) Create(_ context.Context, row T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := row.Head()
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	row = row.WithHead(h)
	r.rows[h.ID] = row

	return &row, nil
}

func (r *ResourceRepository[T]) Update(_ context.Context, row T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := row.Head()
	cur, ok := r.rows[h.ID]
	if !ok || cur.Head().OwnerID != h.OwnerID {
		return nil, nil
	}

	ch := cur.Head()
	ch.UpdatedAt = h.UpdatedAt
	row = cur.Overwrite(row).WithHead(ch)
	r.rows[h.ID] = row

	return &row, nil
}

func (r *ResourceRepository[T]) Deactivate(_ context.Context, id uuid.UUID, ownerID user.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[id]
	if !ok || cur.Head().OwnerID != ownerID {
		return false, nil
	}

	h := cur.Head()
	h.Active = false
	h.UpdatedAt = r.now().UTC()
	r.rows[id] = cur.WithHead(h)

	return true, nil
}

type ProductRepository struct {
	*ResourceRepository[product.Product]
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		ResourceRepository: newResourceRepository(func(p product.Product) string { return p.Category }),
	}
}

func (r *ProductRepository) UpdateStock(_ context.Context, id uuid.UUID, ownerID user.UUID, stock int) (bool, error) {
	if stock < 0 {
		return false, product.ErrNegativeStock
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[id]
	if !ok || cur.OwnerID != ownerID {
		return false, nil
	}
	cur.Stock = stock
	cur.UpdatedAt = r.now().UTC()
	r.rows[id] = cur

	return true, nil
}
