package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/festivalapp/festival-api/internal/model"
	"github.com/festivalapp/festival-api/internal/repository"
)

// UserHandler serves the attendee endpoints.
type UserHandler struct {
	Users *repository.UserRepo
}

// NewUserHandler constructs a UserHandler and panics if the repository is nil.
func NewUserHandler(users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

// ListUsers handles GET /api/users and returns every attendee ordered
// by name.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load users"})
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/users.  The only required field is a
// non-empty name; duplicate names are allowed.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	u := &model.User{Name: body.Name}
	if err := h.Users.Create(c.Request().Context(), u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}
	return c.JSON(http.StatusCreated, u)
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load user"})
	}
	return c.JSON(http.StatusOK, u)
}
