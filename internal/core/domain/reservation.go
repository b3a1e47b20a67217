package domain

import (
	"errors"
	"time"
)

var ErrReservationNotFound = errors.New("reservation not found")

// ErrReservationMismatch is returned when a reservation reached through the
// nested catway route does not belong to that catway.
var ErrReservationMismatch = errors.New("reservation does not belong to this catway")

// ErrValidation marks a write rejected before it reached the store
// (missing required field or unrecognised enum value).
var ErrValidation = errors.New("validation failed")

// Reservation books a catway for a client's boat over a date range.
// CatwayNumber is a soft reference to Catway.CatwayNumber; the store does
// not enforce it.
type Reservation struct {
	ID           string    `json:"id"`
	CatwayNumber string    `json:"catwayNumber"`
	ClientName   string    `json:"clientName"`
	BoatName     string    `json:"boatName"`
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
