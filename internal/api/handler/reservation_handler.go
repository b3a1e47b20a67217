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

// ReservationHandler handles the flat /api/reservations routes. Unlike the
// nested catway routes, creation here does not verify that the referenced
// catway exists.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

type reservationRequest struct {
	CatwayNumber string    `json:"catwayNumber" validate:"required"`
	ClientName   string    `json:"clientName" validate:"required"`
	BoatName     string    `json:"boatName" validate:"required"`
	CheckIn      time.Time `json:"checkIn" validate:"required"`
	CheckOut     time.Time `json:"checkOut" validate:"required"`
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse("invalid payload", err))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to create reservation", err))
	}

	reservation, err := h.service.CreateReservation(c.Request().Context(), ports.CreateReservationInput{
		CatwayNumber: req.CatwayNumber,
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

// List handles GET /api/reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.service.ListReservations(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to list reservations", err))
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: reservations})
}

// Get handles GET /api/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	reservation, err := h.service.GetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("reservation not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to get reservation", err))
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: reservation})
}

// Update handles PUT /api/reservations/:id.
func (h *ReservationHandler) Update(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse("invalid payload", err))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to update reservation", err))
	}

	reservation, err := h.service.UpdateReservation(c.Request().Context(), c.Param("id"), ports.UpdateReservationInput{
		CatwayNumber: req.CatwayNumber,
		ClientName:   req.ClientName,
		BoatName:     req.BoatName,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
	})
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("reservation not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to update reservation", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("reservation", "update").Inc()
	return c.JSON(http.StatusOK, okResponse("reservation updated", reservation))
}

// Delete handles DELETE /api/reservations/:id.
func (h *ReservationHandler) Delete(c echo.Context) error {
	if _, err := h.service.DeleteReservation(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("reservation not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to delete reservation", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("reservation", "delete").Inc()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "reservation deleted"})
}
