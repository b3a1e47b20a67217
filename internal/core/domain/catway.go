package domain

import (
	"errors"
	"time"
)

// CatwayType distinguishes the two kinds of mooring platforms in the marina.
type CatwayType string

const (
	TypeLong  CatwayType = "long"
	TypeShort CatwayType = "short"
)

// DefaultCatwayState is the state assigned to a catway when none is given.
const DefaultCatwayState = "Bon état"

var ErrCatwayNotFound = errors.New("catway not found")
var ErrDuplicateCatway = errors.New("catway number already exists")

// Valid reports whether t is a recognised catway type.
func (t CatwayType) Valid() bool {
	return t == TypeLong || t == TypeShort
}

// Catway is a berth in the marina. CatwayNumber is the business key
// ("A1", "B2", ...); reservations reference it rather than the document ID.
type Catway struct {
	ID           string     `json:"id"`
	CatwayNumber string     `json:"catwayNumber"`
	Type         CatwayType `json:"type"`
	CatwayState  string     `json:"catwayState"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
