package pet

import (
	domain "petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/resource"
)

func fromDBModel(m *Pet) *domain.Pet {
	return &domain.Pet{
		Header: resource.Header{
			ID:        m.ID,
			OwnerID:   m.OwnerID,
			Active:    m.Active,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:     m.Name,
		Type:     domain.Type(m.Type),
		Breed:    m.Breed,
		Age:      m.Age,
		Weight:   m.Weight,
		ImageURL: m.ImageURL,
	}
}
