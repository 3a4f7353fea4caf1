package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/festivalapp/festival-api/internal/model"
	"github.com/festivalapp/festival-api/internal/repository"
)

// SetHandler serves the schedule endpoints: the set catalog, the
// distinct festival days and the per-set attendee counts.
type SetHandler struct {
	Sets *repository.SetRepo
}

// NewSetHandler constructs a SetHandler and panics if the repository is nil.
func NewSetHandler(sets *repository.SetRepo) *SetHandler {
	if sets == nil {
		panic("nil repository passed to NewSetHandler")
	}
	return &SetHandler{Sets: sets}
}

// ListSets handles GET /api/sets.  An optional ?date=YYYY-MM-DD query
// restricts the listing to sets starting on that calendar day.
// Results are ordered by stage then start time.
func (h *SetHandler) ListSets(c echo.Context) error {
	day, err := parseDayQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format"})
	}
	sets, err := h.Sets.ListAll(c.Request().Context(), day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sets"})
	}
	return c.JSON(http.StatusOK, sets)
}

// CreateSet handles POST /api/sets and adds a performance to the
// catalog.  artist, stage, start_time and end_time are required; both
// times must parse as ISO-like datetimes.  description defaults to
// the empty string and image_url to null.  end_time is deliberately
// not checked against start_time, matching the lenient behavior the
// client already depends on.
func (h *SetHandler) CreateSet(c echo.Context) error {
	var body struct {
		Artist      string  `json:"artist"`
		Stage       string  `json:"stage"`
		StartTime   string  `json:"start_time"`
		EndTime     string  `json:"end_time"`
		Description string  `json:"description"`
		ImageURL    *string `json:"image_url"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Artist) == "" || strings.TrimSpace(body.Stage) == "" ||
		strings.TrimSpace(body.StartTime) == "" || strings.TrimSpace(body.EndTime) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}
	start, err := model.ParseDateTime(body.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid datetime format"})
	}
	end, err := model.ParseDateTime(body.EndTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid datetime format"})
	}
	s := &model.Set{
		Artist:      body.Artist,
		Stage:       body.Stage,
		StartTime:   start.Format(model.WireTime),
		EndTime:     end.Format(model.WireTime),
		Description: body.Description,
		ImageURL:    body.ImageURL,
	}
	if err := h.Sets.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create set"})
	}
	return c.JSON(http.StatusCreated, s)
}

// GetSet handles GET /api/sets/:id.
func (h *SetHandler) GetSet(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.Sets.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSetNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "set not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load set"})
	}
	return c.JSON(http.StatusOK, s)
}

// ListFestivalDays handles GET /api/festival-days and returns the
// distinct calendar days that have at least one scheduled set.
func (h *SetHandler) ListFestivalDays(c echo.Context) error {
	days, err := h.Sets.FestivalDays(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load festival days"})
	}
	return c.JSON(http.StatusOK, days)
}

// AttendeeCounts handles GET /api/sets/attendee-counts.  The response
// maps set ids (string keys) to the number of attendees who selected
// them; sets nobody selected are absent.  ?date= restricts the counts
// to one day.
func (h *SetHandler) AttendeeCounts(c echo.Context) error {
	day, err := parseDayQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format"})
	}
	counts, err := h.Sets.AttendeeCounts(c.Request().Context(), day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load attendee counts"})
	}
	return c.JSON(http.StatusOK, counts)
}
