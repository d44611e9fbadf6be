package product

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Product keeps price as text; numeric is parsed by the mapper.
	Product struct {
		ID          uuid.UUID
		OwnerID     uuid.UUID
		Name        string
		Description string
		Price       string
		Stock       int
		Category    string
		ImageURL    string
		Active      bool
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
	Products []*Product
)
