package handler // handler defines http handlers

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/festivalapp/festival-api/internal/model"
)

// parseIDParam converts the named path parameter to an entity id.
func parseIDParam(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// parseDayQuery reads the optional ?date=YYYY-MM-DD query parameter.
// A missing parameter yields (nil, nil); a malformed one yields
// model.ErrBadDate so callers can respond 400.
func parseDayQuery(c echo.Context) (*time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return nil, nil
	}
	day, err := model.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
