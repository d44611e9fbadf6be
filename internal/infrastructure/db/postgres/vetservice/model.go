package vetservice

import (
	"time"

	"github.com/google/uuid"
)

type (
	Service struct {
		ID          uuid.UUID
		OwnerID     uuid.UUID
		Name        string
		Description string
		Price       string
		Category    string
		ImageURL    string
		Active      bool
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
	Services []*Service
)
