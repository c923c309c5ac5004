// Package router wires HTTP routes to their handlers and middleware.  All
// API routes live under the /api/v1 prefix; the split between gated and
// public routes follows the auth contract: listings are public reads, every
// mutation and per-resource read requires a session cookie.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-room-booking/internal/handler"
	"github.com/iliyamo/hostel-room-booking/internal/middleware"
)

// Deps collects everything route registration needs.
type Deps struct {
	JWTSecret string
	Auth      *handler.AuthHandler
	Rooms     *handler.RoomHandler
	Bookings  *handler.BookingHandler
	Reviews   *handler.ReviewHandler

	// Cache wraps public listing routes when non-nil.
	Cache echo.MiddlewareFunc
}

// Register attaches all application routes to the Echo instance.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api/v1")

	// Account and session endpoints, no auth required.
	api.POST("/user", d.Auth.Register)
	api.POST("/user/create-token", d.Auth.CreateToken)
	api.POST("/user/logout", d.Auth.Logout)

	// Public reads.  The response cache only wraps these.
	pub := api.Group("")
	if d.Cache != nil {
		pub.Use(d.Cache)
	}
	pub.GET("/room", d.Rooms.List)
	pub.GET("/reviews", d.Reviews.List)

	// Everything below requires a valid session cookie.
	auth := api.Group("", middleware.SessionAuth(d.JWTSecret))
	auth.GET("/room/:id", d.Rooms.GetByID)
	auth.PATCH("/room/:id", d.Rooms.Mutate)
	auth.GET("/bookings", d.Bookings.List)
	auth.POST("/user/book-room", d.Bookings.Create)
	auth.PATCH("/bookings/:bookingId", d.Bookings.UpdateDate)
	auth.DELETE("/bookings/:bookingId", d.Bookings.Delete)
	auth.POST("/review", d.Reviews.Create)
}
