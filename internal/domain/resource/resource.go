// Package resource holds the shape shared by every owned, role-gated,
// soft-deletable entity (pets, products, vet services).
package resource

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"petconnect-api/internal/domain/user"
)

type Kind string

const (
	KindPet        Kind = "pet"
	KindProduct    Kind = "product"
	KindVetService Kind = "service"
)

// Header is the identity and lifecycle part of an owned resource. It is never
// taken from an update payload.
type Header struct {
	ID        uuid.UUID
	OwnerID   user.UUID
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owned is implemented by value types embedding Header.
type Owned[T any] interface {
	Head() Header
	WithHead(h Header) T
	// Overwrite copies every mutable field from patch, absent ones included.
	Overwrite(patch T) T
	Validate() error
}

// Filter selects active resources. OwnerID wins over Category when both are set.
type Filter struct {
	OwnerID  *user.UUID
	Category string
}

// CleanText trims s and puts it in NFC so equal-looking values compare equal.
func CleanText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
