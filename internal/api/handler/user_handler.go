package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/api/metrics"
	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// UserHandler handles the /api/users routes. Every response serialises the
// domain.User type, whose password hash is never marshalled.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse("invalid payload", err))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to create user", err))
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to create user", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusCreated, okResponse("user created", user))
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to list users", err))
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: users})
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("user not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to get user", err))
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: user})
}

// Update handles PUT /api/users/:id. An empty password keeps the stored
// credential unchanged.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse("invalid payload", err))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errResponse("failed to update user", err))
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("user not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to update user", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, okResponse("user updated", user))
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	if _, err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, failResponse("user not found"))
		}
		return c.JSON(http.StatusInternalServerError, errResponse("failed to delete user", err))
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "delete").Inc()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "user deleted"})
}
