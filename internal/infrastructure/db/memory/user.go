// Package memory holds map backed repositories used with DB_DRIVER=memory and
// by service tests. Each write checks its invariants and mutates under one lock.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"petconnect-api/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[user.UUID]user.User
	now   func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[user.UUID]user.User),
		now:   time.Now,
	}
}

func (r *UserRepository) FetchUserByID(_ context.Context, id user.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) FetchActiveUserByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Active && u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FetchActiveUsers(_ context.Context, role user.Role) (user.Users, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	us := make(user.Users, 0, len(r.users))
	for _, u := range r.users {
		if !u.Active || (role != "" && u.Role != role) {
			continue
		}
		u := u
		us = append(us, &u)
	}
	slices.SortFunc(us, func(a, b *user.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.UUID.String(), b.UUID.String())
	})

	return us, nil
}

func (r *UserRepository) ExistsBy(_ context.Context, field user.Field, value string, exclude user.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.taken(field, value, exclude), nil
}

func (r *UserRepository) CreateUser(_ context.Context, req user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(&req); err != nil {
		return nil, err
	}

	now := r.now().UTC()
	req.UUID = uuid.New()
	req.CreatedAt, req.UpdatedAt = now, now
	r.users[req.UUID] = req

	return &req, nil
}

// UpdateUser keeps id, active flag and creation time of the stored row.
func (r *UserRepository) UpdateUser(_ context.Context, req user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.users[req.UUID]
	if !ok {
		return nil, nil
	}
	if err := r.checkUnique(&req); err != nil {
		return nil, err
	}

	req.Active = cur.Active
	req.CreatedAt = cur.CreatedAt
	req.UpdatedAt = r.now().UTC()
	r.users[req.UUID] = req

	return &req, nil
}

func (r *UserRepository) SetActive(_ context.Context, id user.UUID, active bool) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Active = active
	u.UpdatedAt = r.now().UTC()
	r.users[id] = u

	return &u, nil
}

func (r *UserRepository) checkUnique(u *user.User) error {
	for _, f := range user.UniqueFields {
		if r.taken(f, u.Value(f), u.UUID) {
			return user.DuplicateError(f)
		}
	}
	return nil
}

// taken ignores the active flag: deactivated users keep their identifiers.
func (r *UserRepository) taken(f user.Field, value string, exclude user.UUID) bool {
	if value == "" {
		return false
	}
	for id, u := range r.users {
		if id != exclude && u.Value(f) == value {
			return true
		}
	}
	return false
}
