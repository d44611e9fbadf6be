package pet

import (
	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/resource"
)

type Type string

const (
	TypeCachorro Type = "CACHORRO"
	TypeGato     Type = "GATO"
	TypePassaro  Type = "PASSARO"
	TypePeixe    Type = "PEIXE"
	TypeRoedor   Type = "ROEDOR"
	TypeReptil   Type = "REPTIL"
	TypeOutro    Type = "OUTRO"
)

var Types = []Type{TypeCachorro, TypeGato, TypePassaro, TypePeixe, TypeRoedor, TypeReptil, TypeOutro}

func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

type (
	Pet struct {
		resource.Header

		Name     string
		Type     Type
		Breed    string
		Age      int
		Weight   float64
		ImageURL string
	}
	Pets []Pet
)

func (p Pet) Head() resource.Header { return p.Header }

func (p Pet) WithHead(h resource.Header) Pet {
	p.Header = h
	return p
}

func (p Pet) Overwrite(patch Pet) Pet {
	p.Name = patch.Name
	p.Type = patch.Type
	p.Breed = patch.Breed
	p.Age = patch.Age
	p.Weight = patch.Weight
	p.ImageURL = patch.ImageURL
	return p
}

func (p Pet) Validate() error {
	switch {
	case p.Name == "":
		return errs.InvalidArgument("name is required")
	case p.Type == "":
		return errs.InvalidArgument("type is required")
	case p.Age < 0:
		return errs.InvalidArgument("age cannot be negative")
	case p.Weight < 0:
		return errs.InvalidArgument("weight cannot be negative")
	}
	if _, ok := ParseType(string(p.Type)); !ok {
		return errs.InvalidArgument("unknown pet type")
	}
	return nil
}
