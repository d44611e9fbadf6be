package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
)

type (
	Request struct {
		Name        string          `json:"name" validate:"required,max=120"`
		Description string          `json:"description" validate:"omitempty,max=2000"`
		Price       decimal.Decimal `json:"price"`
		Stock       int             `json:"stock" validate:"gte=0"`
		Category    string          `json:"category" validate:"required,max=64"`
		ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	}

	// StockRequest takes a pointer so a missing stock is told apart from zero.
	StockRequest struct {
		Stock *int `json:"stock" validate:"required"`
	}

	Product struct {
		ID          uuid.UUID       `json:"id"`
		OwnerID     uuid.UUID       `json:"owner_id"`
		Name        string          `json:"name"`
		Description string          `json:"description,omitempty"`
		Price       decimal.Decimal `json:"price"`
		Stock       int             `json:"stock"`
		Category    string          `json:"category"`
		ImageURL    string          `json:"image_url,omitempty"`
		Active      bool            `json:"active"`
		CreatedAt   time.Time       `json:"created_at"`
		UpdatedAt   time.Time       `json:"updated_at"`
	}
)

func ToDomain(r Request) product.Product {
	return product.Product{
		Name:        resource.CleanText(r.Name),
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    resource.CleanText(r.Category),
		ImageURL:    r.ImageURL,
	}
}

func ToResponse(p product.Product) Product {
	return Product{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
