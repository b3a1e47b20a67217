package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// CreateCatwayInput carries the data needed to register a new catway.
// Type and CatwayState fall back to their defaults when empty.
type CreateCatwayInput struct {
	CatwayNumber string
	Type         string
	CatwayState  string
}

// PatchCatwayInput updates only the fields that are non-nil. Both PUT and
// PATCH apply the same merge; absent fields are left untouched.
type PatchCatwayInput struct {
	CatwayNumber *string
	Type         *string
	CatwayState  *string
}

// CatwayService defines use-case operations for catways.
type CatwayService interface {
	CreateCatway(ctx context.Context, input CreateCatwayInput) (*domain.Catway, error)
	ListCatways(ctx context.Context) ([]domain.Catway, error)
	GetCatway(ctx context.Context, id string) (*domain.Catway, error)
	PatchCatway(ctx context.Context, id string, input PatchCatwayInput) (*domain.Catway, error)
	DeleteCatway(ctx context.Context, id string) (*domain.Catway, error)
}
