package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-room-booking/internal/middleware"
	"github.com/iliyamo/hostel-room-booking/internal/model"
	"github.com/iliyamo/hostel-room-booking/internal/queue"
	"github.com/iliyamo/hostel-room-booking/internal/repository"
)

// BookingStore is the slice of the booking repository the endpoints need.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	List(ctx context.Context, f repository.BookingFilter) ([]model.Booking, error)
	UpdateDate(ctx context.Context, id uint64, guestEmail, newDate string) error
	Delete(ctx context.Context, id uint64, guestEmail string) error
}

// EventPublisher pushes domain events to the message broker.  A nil publisher
// disables eventing.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// BookingHandler serves the booking ledger.  Every route is gated; the owner
// identity always comes from the session claim, never from the body.
type BookingHandler struct {
	Bookings BookingStore
	Events   EventPublisher
}

func NewBookingHandler(b BookingStore, ev EventPublisher) *BookingHandler {
	return &BookingHandler{Bookings: b, Events: ev}
}

type createBookingReq struct {
	RoomID      uint64 `json:"roomId"`
	BookingDate string `json:"bookingDate"`
	SeatsCount  uint32 `json:"seatsCount"`
}
type updateBookingReq struct {
	BookingDate string `json:"bookingDate"`
}
type bookingResp struct {
	ID          uint64 `json:"id"`
	RoomID      uint64 `json:"roomId"`
	GuestEmail  string `json:"email"`
	BookingDate string `json:"bookingDate"`
	SeatsCount  uint32 `json:"seatsCount"`
}

// Create inserts a booking for the authenticated guest.  It does not touch
// the room's seat count: the client issues a separate PATCH /room/:id with
// seatsBooked, so the two writes are not atomic with each other.  A
// booking.created event is published best-effort after the insert.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.RoomID == 0 || req.SeatsCount == 0 || !validDate(req.BookingDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "roomId, bookingDate and seatsCount required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b := model.Booking{
		RoomID:      req.RoomID,
		GuestEmail:  middleware.Identity(c),
		BookingDate: req.BookingDate,
		SeatsCount:  req.SeatsCount,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create booking failed"})
	}

	if h.Events != nil {
		ev := queue.BookingCreatedEvent{
			BookingID:   b.ID,
			RoomID:      b.RoomID,
			GuestEmail:  b.GuestEmail,
			BookingDate: b.BookingDate,
			SeatsCount:  b.SeatsCount,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Events.PublishBookingCreated(ctx, ev); err != nil {
			log.Printf("booking: publish event failed: %v", err)
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"insertedId": b.ID})
}

// List returns the caller's bookings, optionally narrowed by date and room.
// An explicit email filter must match the authenticated identity; anything
// else is a 403 with no data.  Without an email filter the listing is scoped
// to the caller.
func (h *BookingHandler) List(c echo.Context) error {
	identity := middleware.Identity(c)
	f := repository.BookingFilter{
		BookingDate: c.QueryParam("date"),
		GuestEmail:  identity,
	}
	if v := c.QueryParam("email"); v != "" {
		if !strings.EqualFold(strings.TrimSpace(v), identity) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		f.GuestEmail = identity
	}
	if v := c.QueryParam("roomId"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid roomId"})
		}
		f.RoomID = n
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	out := make([]bookingResp, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingResp{
			ID: b.ID, RoomID: b.RoomID, GuestEmail: b.GuestEmail,
			BookingDate: b.BookingDate, SeatsCount: b.SeatsCount,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateDate overwrites the booking date.  Only the owning identity may
// update; a foreign or unknown booking id reports 404 either way.
func (h *BookingHandler) UpdateDate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking id"})
	}
	var req updateBookingReq
	if err := c.Bind(&req); err != nil || !validDate(req.BookingDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bookingDate required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.UpdateDate(ctx, id, middleware.Identity(c), req.BookingDate); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking updated"})
}

// Delete removes a booking.  Same owner scoping as UpdateDate.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Delete(ctx, id, middleware.Identity(c)); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking deleted"})
}

// validDate accepts YYYY-MM-DD.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
