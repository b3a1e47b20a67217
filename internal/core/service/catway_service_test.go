package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

type stubCatwayRepo struct {
	catways map[string]*domain.Catway
	nextID  int
}

func newStubCatwayRepo() *stubCatwayRepo {
	return &stubCatwayRepo{catways: make(map[string]*domain.Catway)}
}

func cloneCatway(c *domain.Catway) *domain.Catway {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCatwayRepo) Create(_ context.Context, c *domain.Catway) (*domain.Catway, error) {
	for _, existing := range r.catways {
		if existing.CatwayNumber == c.CatwayNumber {
			return nil, domain.ErrDuplicateCatway
		}
	}
	r.nextID++
	copy := cloneCatway(c)
	copy.ID = fmt.Sprintf("catway_%d", r.nextID)
	r.catways[copy.ID] = cloneCatway(copy)
	return copy, nil
}

func (r *stubCatwayRepo) FindAll(_ context.Context) ([]domain.Catway, error) {
	out := make([]domain.Catway, 0, len(r.catways))
	for _, c := range r.catways {
		out = append(out, *cloneCatway(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CatwayNumber < out[j].CatwayNumber })
	return out, nil
}

func (r *stubCatwayRepo) FindByID(_ context.Context, id string) (*domain.Catway, error) {
	c, ok := r.catways[id]
	if !ok {
		return nil, domain.ErrCatwayNotFound
	}
	return cloneCatway(c), nil
}

func (r *stubCatwayRepo) Update(_ context.Context, id string, fields ports.CatwayUpdate) (*domain.Catway, error) {
	c, ok := r.catways[id]
	if !ok {
		return nil, domain.ErrCatwayNotFound
	}
	if fields.CatwayNumber != nil {
		c.CatwayNumber = *fields.CatwayNumber
	}
	if fields.Type != nil {
		c.Type = *fields.Type
	}
	if fields.CatwayState != nil {
		c.CatwayState = *fields.CatwayState
	}
	return cloneCatway(c), nil
}

func (r *stubCatwayRepo) Delete(_ context.Context, id string) (*domain.Catway, error) {
	c, ok := r.catways[id]
	if !ok {
		return nil, domain.ErrCatwayNotFound
	}
	delete(r.catways, id)
	return c, nil
}

func TestCatwayService_Create_Defaults(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	catway, err := svc.CreateCatway(context.Background(), ports.CreateCatwayInput{CatwayNumber: "A1"})
	if err != nil {
		t.Fatalf("CreateCatway returned error: %v", err)
	}
	if catway.Type != domain.TypeLong {
		t.Fatalf("expected default type long, got %s", catway.Type)
	}
	if catway.CatwayState != domain.DefaultCatwayState {
		t.Fatalf("expected default state, got %q", catway.CatwayState)
	}
	if catway.ID == "" {
		t.Fatalf("expected generated ID")
	}
}

func TestCatwayService_Create_Validation(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	if _, err := svc.CreateCatway(context.Background(), ports.CreateCatwayInput{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing number, got %v", err)
	}
	if _, err := svc.CreateCatway(context.Background(), ports.CreateCatwayInput{CatwayNumber: "A1", Type: "medium"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad type, got %v", err)
	}
}

func TestCatwayService_Create_Duplicate(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	if _, err := svc.CreateCatway(context.Background(), ports.CreateCatwayInput{CatwayNumber: "A1"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateCatway(context.Background(), ports.CreateCatwayInput{CatwayNumber: "A1", Type: "short"}); !errors.Is(err, domain.ErrDuplicateCatway) {
		t.Fatalf("expected ErrDuplicateCatway, got %v", err)
	}
}

func TestCatwayService_Get_AfterCreate(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	created, err := svc.CreateCatway(context.Background(), ports.CreateCatwayInput{CatwayNumber: "B2", Type: "short"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetCatway(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetCatway failed: %v", err)
	}
	if got.CatwayNumber != "B2" || got.Type != domain.TypeShort {
		t.Fatalf("unexpected catway: %+v", got)
	}
}

func TestCatwayService_Patch_PartialFields(t *testing.T) {
	repo := newStubCatwayRepo()
	svc := NewCatwayService(repo, zerolog.Nop())

	created, _ := svc.CreateCatway(context.Background(), ports.CreateCatwayInput{CatwayNumber: "C1"})

	state := "En maintenance"
	patched, err := svc.PatchCatway(context.Background(), created.ID, ports.PatchCatwayInput{CatwayState: &state})
	if err != nil {
		t.Fatalf("PatchCatway failed: %v", err)
	}
	if patched.CatwayState != state {
		t.Fatalf("expected patched state, got %q", patched.CatwayState)
	}
	if patched.CatwayNumber != "C1" || patched.Type != domain.TypeLong {
		t.Fatalf("patch touched untargeted fields: %+v", patched)
	}

	bad := "medium"
	if _, err := svc.PatchCatway(context.Background(), created.ID, ports.PatchCatwayInput{Type: &bad}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad patch type, got %v", err)
	}
}

func TestCatwayService_Delete_ReturnsPreImageThenNotFound(t *testing.T) {
	svc := NewCatwayService(newStubCatwayRepo(), zerolog.Nop())

	created, _ := svc.CreateCatway(context.Background(), ports.CreateCatwayInput{CatwayNumber: "D1"})

	deleted, err := svc.DeleteCatway(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("DeleteCatway failed: %v", err)
	}
	if deleted.CatwayNumber != "D1" {
		t.Fatalf("expected pre-deletion document, got %+v", deleted)
	}

	if _, err := svc.GetCatway(context.Background(), created.ID); !errors.Is(err, domain.ErrCatwayNotFound) {
		t.Fatalf("expected ErrCatwayNotFound after delete, got %v", err)
	}
	if _, err := svc.DeleteCatway(context.Background(), created.ID); !errors.Is(err, domain.ErrCatwayNotFound) {
		t.Fatalf("expected ErrCatwayNotFound on repeated delete, got %v", err)
	}
}
