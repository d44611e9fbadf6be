package pet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/resource"
)

func TestPet_Validate(t *testing.T) {
	tests := []struct {
		name string
		pet  Pet
		ok   bool
	}{
		{name: "valid", pet: Pet{Name: "Rex", Type: TypeCachorro, Age: 0, Weight: 0}, ok: true},
		{name: "missing name", pet: Pet{Type: TypeGato}},
		{name: "missing type", pet: Pet{Name: "Rex"}},
		{name: "lowercase type", pet: Pet{Name: "Rex", Type: "cachorro"}},
		{name: "negative weight", pet: Pet{Name: "Rex", Type: TypeCachorro, Weight: -0.1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pet.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		})
	}
}

func TestPet_OverwriteKeepsHeader(t *testing.T) {
	h := resource.Header{ID: uuid.New(), OwnerID: uuid.New(), Active: true, CreatedAt: time.Now()}
	cur := Pet{Header: h, Name: "Rex", Type: TypeCachorro, Breed: "SRD", ImageURL: "http://img/rex.png"}

	patch := Pet{Header: resource.Header{ID: uuid.New(), OwnerID: uuid.New()}, Name: "Max", Type: TypeGato}
	got := cur.Overwrite(patch)

	assert.Equal(t, h, got.Header)
	assert.Equal(t, "Max", got.Name)
	assert.Equal(t, TypeGato, got.Type)
	assert.Empty(t, got.Breed)
	assert.Empty(t, got.ImageURL)
}
