package ports

import (
	"context"
	"time"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// ReservationUpdate carries the replaceable fields of a reservation.
type ReservationUpdate struct {
	CatwayNumber *string
	ClientName   *string
	BoatName     *string
	CheckIn      *time.Time
	CheckOut     *time.Time
}

// ReservationRepository defines the persistence operations for reservations.
// List results are sorted by check-in date, most recent first.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	FindByCatway(ctx context.Context, catwayNumber string) ([]domain.Reservation, error)
	Update(ctx context.Context, id string, fields ReservationUpdate) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) (*domain.Reservation, error)
}
