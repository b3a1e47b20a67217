package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

type ReservationService struct {
	repo   ports.ReservationRepository
	logger zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, logger: logger}
}

// CreateReservation books a catway. The catway number is a soft reference:
// nothing here checks that it names an existing catway, and no ordering is
// enforced between check-in and check-out. The nested catway route performs
// the only existence check in the system.
func (s *ReservationService) CreateReservation(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	if err := validateReservation(input.CatwayNumber, input.ClientName, input.BoatName, input.CheckIn.IsZero(), input.CheckOut.IsZero()); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Reservation{
		CatwayNumber: input.CatwayNumber,
		ClientName:   input.ClientName,
		BoatName:     input.BoatName,
		CheckIn:      input.CheckIn,
		CheckOut:     input.CheckOut,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("catway_number", input.CatwayNumber).Msg("failed to create reservation")
		return nil, err
	}

	s.logger.Info().
		Str("catway_number", created.CatwayNumber).
		Str("client_name", created.ClientName).
		Msg("reservation created")
	return created, nil
}

// ListReservations returns every reservation, most recent check-in first.
func (s *ReservationService) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.FindAll(ctx)
}

func (s *ReservationService) GetReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.FindByID(ctx, id)
}

// GetReservationsByCatway returns the reservations for one catway number,
// with the same sort as ListReservations.
func (s *ReservationService) GetReservationsByCatway(ctx context.Context, catwayNumber string) ([]domain.Reservation, error) {
	return s.repo.FindByCatway(ctx, catwayNumber)
}

// UpdateReservation replaces every modifiable field of the reservation.
func (s *ReservationService) UpdateReservation(ctx context.Context, id string, input ports.UpdateReservationInput) (*domain.Reservation, error) {
	if err := validateReservation(input.CatwayNumber, input.ClientName, input.BoatName, input.CheckIn.IsZero(), input.CheckOut.IsZero()); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, ports.ReservationUpdate{
		CatwayNumber: &input.CatwayNumber,
		ClientName:   &input.ClientName,
		BoatName:     &input.BoatName,
		CheckIn:      &input.CheckIn,
		CheckOut:     &input.CheckOut,
	})
}

// DeleteReservation removes the reservation and returns its pre-deletion state.
func (s *ReservationService) DeleteReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("catway_number", deleted.CatwayNumber).Msg("reservation deleted")
	return deleted, nil
}

func validateReservation(catwayNumber, clientName, boatName string, checkInZero, checkOutZero bool) error {
	switch {
	case catwayNumber == "":
		return fmt.Errorf("%w: catwayNumber is required", domain.ErrValidation)
	case clientName == "":
		return fmt.Errorf("%w: clientName is required", domain.ErrValidation)
	case boatName == "":
		return fmt.Errorf("%w: boatName is required", domain.ErrValidation)
	case checkInZero:
		return fmt.Errorf("%w: checkIn is required", domain.ErrValidation)
	case checkOutZero:
		return fmt.Errorf("%w: checkOut is required", domain.ErrValidation)
	}
	return nil
}
