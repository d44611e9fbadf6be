package vetservice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/vetservice"
)

type (
	Request struct {
		Name        string          `json:"name" validate:"required,max=120"`
		Description string          `json:"description" validate:"omitempty,max=2000"`
		Price       decimal.Decimal `json:"price"`
		Category    string          `json:"category" validate:"required,max=64"`
		ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	}

	Service struct {
		ID          uuid.UUID       `json:"id"`
		OwnerID     uuid.UUID       `json:"owner_id"`
		Name        string          `json:"name"`
		Description string          `json:"description,omitempty"`
		Price       decimal.Decimal `json:"price"`
		Category    string          `json:"category"`
		ImageURL    string          `json:"image_url,omitempty"`
		Active      bool            `json:"active"`
		CreatedAt   time.Time       `json:"created_at"`
		UpdatedAt   time.Time       `json:"updated_at"`
	}
)

func ToDomain(r Request) vetservice.Service {
	return vetservice.Service{
		Name:        resource.CleanText(r.Name),
		Description: r.Description,
		Price:       r.Price,
		Category:    resource.CleanText(r.Category),
		ImageURL:    r.ImageURL,
	}
}

func ToResponse(s vetservice.Service) Service {
	return Service{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Category:    s.Category,
		ImageURL:    s.ImageURL,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
