package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-room-booking/internal/model"
	"github.com/iliyamo/hostel-room-booking/internal/repository"
)

// RoomStore is the slice of the room repository the room endpoints need.
type RoomStore interface {
	List(ctx context.Context, f repository.RoomFilter) ([]repository.RoomSummary, int, error)
	GetByID(ctx context.Context, id uint64) (model.Room, error)
	ApplyMutation(ctx context.Context, id uint64, m repository.RoomMutation) error
}

// RoomHandler serves the room directory: public listing, gated detail and
// gated mutation.
type RoomHandler struct {
	Rooms RoomStore
}

func NewRoomHandler(r RoomStore) *RoomHandler { return &RoomHandler{Rooms: r} }

type roomDetailResp struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	PriceCents     uint32 `json:"price"`
	ThumbnailURL   string `json:"thumbnail"`
	SpecialOffer   bool   `json:"specialOffer"`
	SeatsAvailable int32  `json:"seatsAvailable"`
	ReviewCount    uint32 `json:"reviewCount"`
	Description    string `json:"description"`
}

type roomMutationReq struct {
	SeatsBooked      *int32  `json:"seatsBooked"`
	ReviewCountValue *uint32 `json:"reviewCountValue"`
}

// List is the public room listing.  Query parameters follow the frontend
// contract: priceRange caps the price, sortingOrder is +1/-1 by price,
// currentPage selects a fixed-size page of 4.  A non-numeric page falls back
// to 0 instead of failing.  The response carries the page under "result" and
// the unpaginated match count under "total".
func (h *RoomHandler) List(c echo.Context) error {
	f := repository.RoomFilter{
		SortDir: atoiOr(c.QueryParam("sortingOrder"), 0),
		Page:    atoiOr(c.QueryParam("currentPage"), 0),
	}
	if v := c.QueryParam("priceRange"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			f.MaxPriceCents = uint32(n)
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	page, total, err := h.Rooms.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"result": page, "total": total})
}

// GetByID returns a single room's detail.  Gated: the route sits behind the
// session middleware.
func (h *RoomHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusOK, roomDetailResp{
		ID: m.ID, Name: m.Name, PriceCents: m.PriceCents, ThumbnailURL: m.ThumbnailURL,
		SpecialOffer: m.SpecialOffer, SeatsAvailable: m.SeatsAvailable,
		ReviewCount: m.ReviewCount, Description: m.Description,
	})
}

// Mutate applies the PATCH body to a room.  seatsBooked subtracts from the
// available seat count (no floor; concurrent bookings of the last seats can
// both land).  reviewCountValue overwrites the stored review count with the
// client-computed total.  Either field may appear alone; an empty body is a
// 400.
func (h *RoomHandler) Mutate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}
	var req roomMutationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.SeatsBooked == nil && req.ReviewCountValue == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	mut := repository.RoomMutation{SeatsBooked: req.SeatsBooked, ReviewCount: req.ReviewCountValue}
	if err := h.Rooms.ApplyMutation(ctx, id, mut); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room updated"})
}

// atoiOr parses s as an int, falling back to def for empty or non-numeric
// input.  The listing page number goes through this so a junk currentPage
// behaves like page 0 rather than erroring.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
