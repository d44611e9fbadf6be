package product

import (
	"fmt"

	"github.com/shopspring/decimal"

	domain "petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
)

func fromDBModel(m *Product) (*domain.Product, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return nil, fmt.Errorf("product %s: bad price %q: %w", m.ID, m.Price, err)
	}

	return &domain.Product{
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
		Stock:       m.Stock,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
	}, nil
}
