package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"petconnect-api/internal/application/guard"
	"petconnect-api/internal/application/ports"
	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/domain/vetservice"
)

// ResourceManager runs the create/update/delete lifecycle shared by every
// owned resource. Kind decides the creator role through the guard policy.
type ResourceManager[T resource.Owned[T]] struct {
	observer

	kind  resource.Kind
	repo  resource.Repository[T]
	users user.Repository
	now   func() time.Time
}

func NewResourceManager[T resource.Owned[T]](
	kind resource.Kind,
	repo resource.Repository[T],
	users user.Repository,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) *ResourceManager[T] {
	return &ResourceManager[T]{
		observer: observer{events: events, mCounter: mCounter},
		kind:     kind,
		repo:     repo,
		users:    users,
		now:      time.Now,
	}
}

func NewPetManager(
	repo resource.Repository[pet.Pet],
	users user.Repository,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) *ResourceManager[pet.Pet] {
	return NewResourceManager(resource.KindPet, repo, users, events, mCounter)
}

func NewVetServiceManager(
	repo resource.Repository[vetservice.Service],
	users user.Repository,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) *ResourceManager[vetservice.Service] {
	return NewResourceManager(resource.KindVetService, repo, users, events, mCounter)
}

// List never returns inactive resources.
func (m *ResourceManager[T]) List(ctx context.Context, f resource.Filter) ([]T, error) {
	if f.OwnerID != nil {
		f.Category = ""
	}
	return m.repo.FetchActive(ctx, f)
}

// GetByID returns inactive resources too.
func (m *ResourceManager[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	r, err := m.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, m.notFound()
	}
	return r, nil
}

func (m *ResourceManager[T]) Create(ctx context.Context, r T, actorID user.UUID) (_ *T, err error) {
	ctx, span := startSpan(ctx, string(m.kind)+".create")
	defer func() { endSpan(span, err) }()

	actor, err := m.users.FetchUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !actor.Active {
		return nil, errs.NotFound(msgUserNotFound)
	}
	if err = guard.Authorize(guard.ActorOf(actor), guard.CreateAction(m.kind), uuid.Nil); err != nil {
		m.countDenied(err)
		return nil, err
	}
	if err = r.Validate(); err != nil {
		return nil, err
	}

	now := m.now().UTC()
	r = r.WithHead(resource.Header{
		OwnerID:   actor.UUID,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})

	created, err := m.repo.Create(ctx, r)
	if err != nil {
		return nil, err
	}

	m.count(string(m.kind) + "_created_total")
	m.emit(ctx, string(m.kind), "created", (*created).Head().ID.String(), actorID.String())

	return created, nil
}

// Update overwrites every mutable field of the resource with patch. Identity,
// owner, active flag and creation time are kept.
func (m *ResourceManager[T]) Update(ctx context.Context, id uuid.UUID, patch T, actorID user.UUID) (_ *T, err error) {
	ctx, span := startSpan(ctx, string(m.kind)+".update")
	defer func() { endSpan(span, err) }()

	cur, err := m.owned(ctx, id, actorID, guard.ActionUpdateResource)
	if err != nil {
		return nil, err
	}

	next := (*cur).Overwrite(patch)
	if err = next.Validate(); err != nil {
		return nil, err
	}
	h := (*cur).Head()
	h.UpdatedAt = m.now().UTC()
	next = next.WithHead(h)

	updated, err := m.repo.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, m.notFound()
	}

	m.count(string(m.kind) + "_updated_total")
	m.emit(ctx, string(m.kind), "updated", id.String(), actorID.String())

	return updated, nil
}

// Delete deactivates the resource; the record is kept.
func (m *ResourceManager[T]) Delete(ctx context.Context, id uuid.UUID, actorID user.UUID) (err error) {
	ctx, span := startSpan(ctx, string(m.kind)+".delete")
	defer func() { endSpan(span, err) }()

	if _, err = m.owned(ctx, id, actorID, guard.ActionDeleteResource); err != nil {
		return err
	}

	ok, err := m.repo.Deactivate(ctx, id, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return m.notFound()
	}

	m.count(string(m.kind) + "_deleted_total")
	m.emit(ctx, string(m.kind), "deleted", id.String(), actorID.String())

	return nil
}

// owned loads the resource and runs the owner-only rule for action.
func (m *ResourceManager[T]) owned(ctx context.Context, id uuid.UUID, actorID user.UUID, action guard.Action) (*T, error) {
	cur, err := m.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, m.notFound()
	}
	if err = guard.Authorize(guard.Actor{ID: actorID}, action, (*cur).Head().OwnerID); err != nil {
		m.countDenied(err)
		return nil, err
	}
	return cur, nil
}

func (m *ResourceManager[T]) notFound() error {
	return errs.NotFound(string(m.kind) + " not found")
}
