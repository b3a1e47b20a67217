package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

type CatwayService struct {
	repo   ports.CatwayRepository
	logger zerolog.Logger
}

func NewCatwayService(repo ports.CatwayRepository, logger zerolog.Logger) *CatwayService {
	return &CatwayService{repo: repo, logger: logger}
}

// CreateCatway registers a new berth. Type defaults to "long" and
// CatwayState to the default state when left empty; enum and required
// checks happen here so the failure contract does not depend on
// store-level schema validation.
func (s *CatwayService) CreateCatway(ctx context.Context, input ports.CreateCatwayInput) (*domain.Catway, error) {
	if input.CatwayNumber == "" {
		return nil, fmt.Errorf("%w: catwayNumber is required", domain.ErrValidation)
	}

	catwayType := domain.CatwayType(input.Type)
	if input.Type == "" {
		catwayType = domain.TypeLong
	}
	if !catwayType.Valid() {
		return nil, fmt.Errorf("%w: type must be one of long, short", domain.ErrValidation)
	}

	state := input.CatwayState
	if state == "" {
		state = domain.DefaultCatwayState
	}

	created, err := s.repo.Create(ctx, &domain.Catway{
		CatwayNumber: input.CatwayNumber,
		Type:         catwayType,
		CatwayState:  state,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("catway_number", input.CatwayNumber).Msg("failed to create catway")
		return nil, err
	}

	s.logger.Info().Str("catway_number", created.CatwayNumber).Msg("catway created")
	return created, nil
}

// ListCatways returns every catway, sorted by catway number ascending.
func (s *CatwayService) ListCatways(ctx context.Context) ([]domain.Catway, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatwayService) GetCatway(ctx context.Context, id string) (*domain.Catway, error) {
	return s.repo.FindByID(ctx, id)
}

// PatchCatway merges the fields present in the input into the stored
// catway. Both PUT and PATCH route here; fields left out of the body are
// kept as they are.
func (s *CatwayService) PatchCatway(ctx context.Context, id string, input ports.PatchCatwayInput) (*domain.Catway, error) {
	var fields ports.CatwayUpdate
	fields.CatwayNumber = input.CatwayNumber
	fields.CatwayState = input.CatwayState

	if input.Type != nil {
		catwayType := domain.CatwayType(*input.Type)
		if !catwayType.Valid() {
			return nil, fmt.Errorf("%w: type must be one of long, short", domain.ErrValidation)
		}
		fields.Type = &catwayType
	}

	return s.repo.Update(ctx, id, fields)
}

// DeleteCatway removes the catway and returns its pre-deletion state.
func (s *CatwayService) DeleteCatway(ctx context.Context, id string) (*domain.Catway, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("catway_number", deleted.CatwayNumber).Msg("catway deleted")
	return deleted, nil
}
