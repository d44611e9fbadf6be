package pet

import (
	"time"

	"github.com/google/uuid"

	"petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/resource"
)

type (
	Request struct {
		Name     string  `json:"name" validate:"required,max=120"`
		Type     string  `json:"type" validate:"required,pettype"`
		Breed    string  `json:"breed" validate:"omitempty,max=120"`
		Age      int     `json:"age" validate:"gte=0"`
		Weight   float64 `json:"weight" validate:"gte=0"`
		ImageURL string  `json:"image_url" validate:"omitempty,url"`
	}

	Pet struct {
		ID        uuid.UUID `json:"id"`
		OwnerID   uuid.UUID `json:"owner_id"`
		Name      string    `json:"name"`
		Type      string    `json:"type"`
		Breed     string    `json:"breed,omitempty"`
		Age       int       `json:"age"`
		Weight    float64   `json:"weight"`
		ImageURL  string    `json:"image_url,omitempty"`
		Active    bool      `json:"active"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)

func ToDomain(r Request) pet.Pet {
	return pet.Pet{
		Name:     resource.CleanText(r.Name),
		Type:     pet.Type(r.Type),
		Breed:    resource.CleanText(r.Breed),
		Age:      r.Age,
		Weight:   r.Weight,
		ImageURL: r.ImageURL,
	}
}

func ToResponse(p pet.Pet) Pet {
	return Pet{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Type:      string(p.Type),
		Breed:     p.Breed,
		Age:       p.Age,
		Weight:    p.Weight,
		ImageURL:  p.ImageURL,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
