package services

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/domain/vetservice"
	"petconnect-api/internal/infrastructure/credentials"
	"petconnect-api/internal/infrastructure/db/memory"
	"petconnect-api/internal/infrastructure/metrics"
	"petconnect-api/internal/infrastructure/mq"
)

type FakePublisher struct {
	mu     sync.Mutex
	events []mq.Event
}

func (p *FakePublisher) Publish(_ context.Context, e mq.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *FakePublisher) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, len(p.events))
	for i, e := range p.events {
		keys[i] = e.RoutingKey()
	}
	return keys
}

// Actors returns the actor ids recorded for routingKey, in publish order.
func (p *FakePublisher) Actors(routingKey string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		if e.RoutingKey() == routingKey {
			out = append(out, e.ActorID)
		}
	}
	return out
}

type testEnv struct {
	users    *memory.UserRepository
	events   *FakePublisher
	identity *IdentityService
	pets     *ResourceManager[pet.Pet]
	products *ProductManager
	vets     *ResourceManager[vetservice.Service]
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepository()
	events := &FakePublisher{}
	counter := metrics.NewCounter(prometheus.NewRegistry())

	identity, err := NewIdentityService(
		users,
		credentials.NewBcryptHasher(bcrypt.MinCost),
		credentials.PlainAnswers{},
		events,
		counter,
	)
	require.NoError(t, err)

	return &testEnv{
		users:    users,
		events:   events,
		identity: identity,
		pets:     NewPetManager(memory.NewPetRepository(), users, events, counter),
		products: NewProductManager(memory.NewProductRepository(), users, events, counter),
		vets:     NewVetServiceManager(memory.NewVetServiceRepository(), users, events, counter),
	}
}

func (e *testEnv) register(t *testing.T, email string, role user.Role) *user.User {
	t.Helper()

	u, err := e.identity.Register(context.Background(), user.User{
		Email: email,
		Name:  "Test " + string(role),
		Role:  role,
		SecurityAnswers: user.SecurityAnswers{
			Pet:    "Rex",
			Car:    "Fusca",
			Friend: "Ana",
		},
	}, "password123")
	require.NoError(t, err)
	return u
}
