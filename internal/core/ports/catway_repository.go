package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// CatwayUpdate carries the fields of a catway that may change after
// creation. Nil fields are left untouched, which lets the same method
// back both full updates and partial patches.
type CatwayUpdate struct {
	CatwayNumber *string
	Type         *domain.CatwayType
	CatwayState  *string
}

// CatwayRepository defines the persistence operations for catways.
type CatwayRepository interface {
	Create(ctx context.Context, c *domain.Catway) (*domain.Catway, error)
	FindAll(ctx context.Context) ([]domain.Catway, error)
	FindByID(ctx context.Context, id string) (*domain.Catway, error)
	Update(ctx context.Context, id string, fields CatwayUpdate) (*domain.Catway, error)
	// Delete removes the catway and returns the document as it was before
	// deletion.
	Delete(ctx context.Context, id string) (*domain.Catway, error)
}
