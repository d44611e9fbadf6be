package product

import (
	"github.com/shopspring/decimal"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/resource"
)

type (
	Product struct {
		resource.Header

		Name        string
		Description string
		Price       decimal.Decimal
		Stock       int
		Category    string
		ImageURL    string
	}
	Products []Product
)

func (p Product) Head() resource.Header { return p.Header }

func (p Product) WithHead(h resource.Header) Product {
	p.Header = h
	return p
}

func (p Product) Overwrite(patch Product) Product {
	p.Name = patch.Name
	p.Description = patch.Description
	p.Price = patch.Price
	p.Stock = patch.Stock
	p.Category = patch.Category
	p.ImageURL = patch.ImageURL
	return p
}

func (p Product) Validate() error {
	switch {
	case p.Name == "":
		return errs.InvalidArgument("name is required")
	case !p.Price.IsPositive():
		return errs.InvalidArgument("price must be positive")
	case p.Stock < 0:
		return ErrNegativeStock
	case p.Category == "":
		return errs.InvalidArgument("category is required")
	}
	return nil
}

var ErrNegativeStock = errs.InvalidArgument("stock cannot be negative")
