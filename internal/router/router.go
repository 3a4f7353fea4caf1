package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/festivalapp/festival-api/internal/handler"
)

// RegisterRoutes registers routes that sit outside the /api surface on
// the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers and monitoring to verify the service
// is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the festival API under the /api prefix.  The
// cache middleware, when non-nil, is applied to the read-heavy
// schedule endpoints only; everything that can change state stays
// uncached.
func RegisterAPI(e *echo.Echo, u *handler.UserHandler, s *handler.SetHandler, sel *handler.SelectionHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api")

	var cached []echo.MiddlewareFunc
	if cache != nil {
		cached = append(cached, cache)
	}

	// Attendees
	g.GET("/users", u.ListUsers)
	g.POST("/users", u.CreateUser)
	g.GET("/users/:id", u.GetUser)

	// Schedule
	g.GET("/festival-days", s.ListFestivalDays, cached...)
	g.GET("/sets", s.ListSets, cached...)
	g.POST("/sets", s.CreateSet)
	g.GET("/sets/attendee-counts", s.AttendeeCounts)
	g.GET("/sets/:id", s.GetSet)

	// Selections
	g.GET("/selections", sel.ListSelections)
	g.POST("/selections", sel.CreateSelection)
	g.GET("/users/:id/selections", sel.ListUserSelections)
	g.GET("/sets/:id/users", sel.ListSetUsers)
	g.DELETE("/users/:id/selections/:set_id", sel.DeleteSelection)
}
