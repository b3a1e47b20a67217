package ports

import (
	"context"
	"time"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// CreateReservationInput carries the data needed to book a catway.
type CreateReservationInput struct {
	CatwayNumber string
	ClientName   string
	BoatName     string
	CheckIn      time.Time
	CheckOut     time.Time
}

// UpdateReservationInput replaces every modifiable field of a reservation.
type UpdateReservationInput struct {
	CatwayNumber string
	ClientName   string
	BoatName     string
	CheckIn      time.Time
	CheckOut     time.Time
}

// ReservationService defines use-case operations for reservations.
type ReservationService interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	GetReservation(ctx context.Context, id string) (*domain.Reservation, error)
	GetReservationsByCatway(ctx context.Context, catwayNumber string) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, id string, input UpdateReservationInput) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id string) (*domain.Reservation, error)
}
