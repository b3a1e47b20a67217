package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/api/metrics"
	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// CatwayHandler handles HTTP requests for catways, including the
// reservations sub-resource nested under a catway.
type CatwayHandler struct {
	catways      ports.CatwayService
	reservations ports.ReservationService
}

func NewCatwayHandler(catways ports.CatwayService, reservations ports.ReservationService) *CatwayHandler {
	return &CatwayHandler{catways: catways, reservations: reservations}
}

// --- Request types ---

type createCatwayRequest struct {
	CatwayNumber string `json:"catwayNumber" validate:"required"`
	Type         string `json:"type" validate:"omitempty,oneof=long short"`
	CatwayState  string `json:"catwayState"`
}

type patchCatwayRequest struct {
	CatwayNumber *string `json:"catwayNumber"`
	Type         *string `json:"type"`
	CatwayState  *string `json:"catwayState"`
}

type nestedReservationRequest struct {
	ClientName string    `json:"clientName" validate:"required"`
	BoatName   string    `json:"boatName" validate:"required"`
	CheckIn    time.Time `json:"checkIn" validate:"required"`
	CheckOut   time.Time `json:"checkOut" validate:"required"`
}

// Create handles POST /api/catways.
func (h *CatwayHandler) Create(c echo.Context) error {
	var req createCatwayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse("invalid payload", err))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to create catway", err))
	}

	catway, err := h.catways.CreateCatway(c.Request().Context(), ports.CreateCatwayInput{
		CatwayNumber: req.CatwayNumber,
		Type:         req.Type,
		CatwayState:  req.CatwayState,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to create catway", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("catway", "create").Inc()
	return c.JSON(http.StatusCreated, okResponse("catway created", catway))
}

// List handles GET /api/catways.
func (h *CatwayHandler) List(c echo.Context) error {
	catways, err := h.catways.ListCatways(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to list catways", err))
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: catways})
}

// Get handles GET /api/catways/:id.
func (h *CatwayHandler) Get(c echo.Context) error {
	catway, err := h.catways.GetCatway(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCatwayNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("catway not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to get catway", err))
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: catway})
}

// Update handles PUT /api/catways/:id. Fields absent from the body are
// left untouched, so PUT and PATCH apply the same merge.
func (h *CatwayHandler) Update(c echo.Context) error {
	return h.merge(c, "update")
}

// Patch handles PATCH /api/catways/:id.
func (h *CatwayHandler) Patch(c echo.Context) error {
	return h.merge(c, "patch")
}

func (h *CatwayHandler) merge(c echo.Context, op string) error {
	var req patchCatwayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse("invalid payload", err))
	}

	catway, err := h.catways.PatchCatway(c.Request().Context(), c.Param("id"), ports.PatchCatwayInput{
		CatwayNumber: req.CatwayNumber,
		Type:         req.Type,
		CatwayState:  req.CatwayState,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCatwayNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("catway not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to update catway", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("catway", op).Inc()
	return c.JSON(http.StatusOK, okResponse("catway updated", catway))
}

// Delete handles DELETE /api/catways/:id.
func (h *CatwayHandler) Delete(c echo.Context) error {
	if _, err := h.catways.DeleteCatway(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCatwayNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("catway not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to delete catway", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("catway", "delete").Inc()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "catway deleted"})
}

// --- Reservations sub-resource ---

// resolveCatway loads the catway named by the :id path parameter. Every
// nested route resolves the catway first; a missing catway is a 404 before
// the reservation service is touched.
func (h *CatwayHandler) resolveCatway(c echo.Context) (*domain.Catway, error) {
	catway, err := h.catways.GetCatway(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCatwayNotFound) {
			return nil, c.JSON(http.StatusNotFound, failResponse("catway not found"))
		}
		return nil, c.JSON(http.StatusInternalServerError, errResponse("failed to get catway", err))
	}
	return catway, nil
}

// CreateReservation handles POST /api/catways/:id/reservations. The resolved
// catway's number is forced into the reservation; a catwayNumber in the body
// is ignored, so the nested path always wins.
func (h *CatwayHandler) CreateReservation(c echo.Context) error {
	catway, err := h.resolveCatway(c)
	if catway == nil {
		return err
	}

	var req nestedReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse("invalid payload", err))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to create reservation", err))
	}

	reservation, err := h.reservations.CreateReservation(c.Request().Context(), ports.CreateReservationInput{
		CatwayNumber: catway.CatwayNumber,
		ClientName:   req.ClientName,
		BoatName:     req.BoatName,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to create reservation", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("reservation", "create").Inc()
	return c.JSON(http.StatusCreated, okResponse("reservation created", reservation))
}

// ListReservations handles GET /api/catways/:id/reservations.
func (h *CatwayHandler) ListReservations(c echo.Context) error {
	catway, err := h.resolveCatway(c)
	if catway == nil {
		return err
	}

	reservations, err := h.reservations.GetReservationsByCatway(c.Request().Context(), catway.CatwayNumber)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to list reservations", err))
	}
	return c.JSON(http.StatusOK, listResponse(reservations, len(reservations)))
}

// GetReservation handles GET /api/catways/:id/reservations/:idReservation.
// A reservation that exists but belongs to another catway is a 400, the
// only cross-entity consistency check in the system.
func (h *CatwayHandler) GetReservation(c echo.Context) error {
	catway, err := h.resolveCatway(c)
	if catway == nil {
		return err
	}

	reservation, err := h.reservations.GetReservation(c.Request().Context(), c.Param("idReservation"))
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("reservation not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to get reservation", err))
	}

	if reservation.CatwayNumber != catway.CatwayNumber {
		return c.JSON(http.StatusBadRequest, failResponse(domain.ErrReservationMismatch.Error()))
	}

	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: reservation})
}

// DeleteReservation handles DELETE /api/catways/:id/reservations/:idReservation.
func (h *CatwayHandler) DeleteReservation(c echo.Context) error {
	catway, err := h.resolveCatway(c)
	if catway == nil {
		return err
	}

	if _, err := h.reservations.DeleteReservation(c.Request().Context(), c.Param("idReservation")); err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("reservation not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to delete reservation", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("reservation", "delete").Inc()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "reservation deleted"})
}
