// This file implements the selection endpoints: creating and deleting
// the (user, set) join records and the two joined listings (a user's
// selected sets, a set's attendees).  Existence of the parent user or
// set is checked up front where the API promises a 404; the creation
// path leaves referential integrity to the schema's foreign keys.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/festivalapp/festival-api/internal/model"
	"github.com/festivalapp/festival-api/internal/repository"
)

// SelectionHandler bundles the repositories the selection endpoints need.
type SelectionHandler struct {
	Selections *repository.SelectionRepo
	Users      *repository.UserRepo
	Sets       *repository.SetRepo
}

// NewSelectionHandler constructs a SelectionHandler and panics if any
// dependency is nil.
func NewSelectionHandler(selections *repository.SelectionRepo, users *repository.UserRepo, sets *repository.SetRepo) *SelectionHandler {
	if selections == nil || users == nil || sets == nil {
		panic("nil repository passed to NewSelectionHandler")
	}
	return &SelectionHandler{Selections: selections, Users: users, Sets: sets}
}

// ListSelections handles GET /api/selections and returns every
// selection record.
func (h *SelectionHandler) ListSelections(c echo.Context) error {
	sels, err := h.Selections.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load selections"})
	}
	return c.JSON(http.StatusOK, sels)
}

// CreateSelection handles POST /api/selections.  Both user_id and
// set_id are required; a second selection for the same pair is
// rejected with 400.
func (h *SelectionHandler) CreateSelection(c echo.Context) error {
	var body struct {
		UserID uint64 `json:"user_id"`
		SetID  uint64 `json:"set_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == 0 || body.SetID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}
	sel := &model.Selection{UserID: body.UserID, SetID: body.SetID}
	if err := h.Selections.Create(c.Request().Context(), sel); err != nil {
		if errors.Is(err, repository.ErrSelectionExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "selection already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create selection"})
	}
	return c.JSON(http.StatusCreated, sel)
}

// ListUserSelections handles GET /api/users/:id/selections.  It
// returns the sets (not the join records) the user plans to attend,
// ordered by start time, optionally restricted to one calendar day.
func (h *SelectionHandler) ListUserSelections(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	day, err := parseDayQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format"})
	}
	if _, err := h.Users.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load user"})
	}
	sets, err := h.Selections.ListSetsByUser(c.Request().Context(), id, day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load selections"})
	}
	return c.JSON(http.StatusOK, sets)
}

// ListSetUsers handles GET /api/sets/:id/users and returns the
// attendees who selected the set, in the order they selected it.
func (h *SelectionHandler) ListSetUsers(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.Sets.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrSetNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "set not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load set"})
	}
	users, err := h.Selections.ListUsersBySet(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load attendees"})
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteSelection handles DELETE /api/users/:id/selections/:set_id.
// Only the existence of the exact (user, set) pair matters; a missing
// pair is a 404 regardless of whether the user or set exists.
func (h *SelectionHandler) DeleteSelection(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	setID, err := parseIDParam(c, "set_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid set_id"})
	}
	err = h.Selections.DeleteByUserAndSet(c.Request().Context(), userID, setID)
	if err != nil {
		if errors.Is(err, repository.ErrSelectionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "selection not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
