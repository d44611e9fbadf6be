package pet

import (
	"time"

	"github.com/google/uuid"
)

type (
	Pet struct {
		ID        uuid.UUID
		OwnerID   uuid.UUID
		Name      string
		Type      string
		Breed     string
		Age       int
		Weight    float64
		ImageURL  string
		Active    bool
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Pets []*Pet
)
