package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/api/middleware"
	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// DashboardHandler renders the server-side pages. It consumes the same
// services as the JSON API and adds no logic of its own.
type DashboardHandler struct {
	catways      ports.CatwayService
	reservations ports.ReservationService
}

func NewDashboardHandler(catways ports.CatwayService, reservations ports.ReservationService) *DashboardHandler {
	return &DashboardHandler{catways: catways, reservations: reservations}
}

// Home handles GET / — the entry page with the login form. The ?error=
// query code from a failed login redirect maps to a message here.
func (h *DashboardHandler) Home(c echo.Context) error {
	var errMsg string
	switch c.QueryParam("error") {
	case "credentials":
		errMsg = "Email ou mot de passe incorrect."
	case "server":
		errMsg = "Erreur serveur lors de la connexion. Réessayez dans quelques instants."
	}

	return c.Render(http.StatusOK, "index.html", map[string]any{
		"Title":    "Accueil - Port de Plaisance",
		"ErrorMsg": errMsg,
	})
}

// Overview handles GET /dashboard.
func (h *DashboardHandler) Overview(c echo.Context) error {
	catways, err := h.catways.ListCatways(c.Request().Context())
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	reservations, err := h.reservations.ListReservations(c.Request().Context())
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	return c.Render(http.StatusOK, "dashboard.html", map[string]any{
		"Title":        "Tableau de bord",
		"User":         middleware.CurrentSession(c),
		"Catways":      catways,
		"Reservations": reservations,
	})
}

// Catways handles GET /dashboard/catways.
func (h *DashboardHandler) Catways(c echo.Context) error {
	catways, err := h.catways.ListCatways(c.Request().Context())
	if err != nil {
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	return c.Render(http.StatusOK, "catways.html", map[string]any{
		"Title":   "Liste des catways",
		"User":    middleware.CurrentSession(c),
		"Catways": catways,
	})
}

// CatwayDetails handles GET /dashboard/catways/:id. A missing catway
// bounces back to the list rather than erroring.
func (h *DashboardHandler) CatwayDetails(c echo.Context) error {
	catway, err := h.catways.GetCatway(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCatwayNotFound) {
			return c.Redirect(http.StatusFound, "/dashboard/catways")
		}
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	reservations, err := h.reservations.GetReservationsByCatway(c.Request().Context(), catway.CatwayNumber)
	if err != nil {
		reservations = nil
	}

	return c.Render(http.StatusOK, "catway_details.html", map[string]any{
		"Title":        "Catway " + catway.CatwayNumber,
		"User":         middleware.CurrentSession(c),
		"Catway":       catway,
		"Reservations": reservations,
	})
}

// Reservations handles GET /dashboard/reservations.
func (h *DashboardHandler) Reservations(c echo.Context) error {
	reservations, err := h.reservations.ListReservations(c.Request().Context())
	if err != nil {
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	return c.Render(http.StatusOK, "reservations.html", map[string]any{
		"Title":        "Liste des réservations",
		"User":         middleware.CurrentSession(c),
		"Reservations": reservations,
	})
}
