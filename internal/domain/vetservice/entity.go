package vetservice

import (
	"github.com/shopspring/decimal"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/resource"
)

type (
	Service struct {
		resource.Header

		Name        string
		Description string
		Price       decimal.Decimal
		Category    string
		ImageURL    string
	}
	Services []Service
)

func (s Service) Head() resource.Header { return s.Header }

func (s Service) WithHead(h resource.Header) Service {
	s.Header = h
	return s
}

func (s Service) Overwrite(patch Service) Service {
	s.Name = patch.Name
	s.Description = patch.Description
	s.Price = patch.Price
	s.Category = patch.Category
	s.ImageURL = patch.ImageURL
	return s
}

func (s Service) Validate() error {
	switch {
	case s.Name == "":
		return errs.InvalidArgument("name is required")
	case !s.Price.IsPositive():
		return errs.InvalidArgument("price must be positive")
	case s.Category == "":
		return errs.InvalidArgument("category is required")
	}
	return nil
}
