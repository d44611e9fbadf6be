package vetservice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"petconnect-api/internal/domain/resource"
	domain "petconnect-api/internal/domain/vetservice"
)

func fromDBModel(m *Service) (*domain.Service, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return nil, fmt.Errorf("service %s: bad price %q: %w", m.ID, m.Price, err)
	}

	return &domain.Service{
		Header: resource.Header{
			ID:        m.ID,
			OwnerID:   m.OwnerID,
			Active:    m.Active,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		Description: m.Description,
		Price:       price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
	}, nil
}
