package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-room-booking/internal/middleware"
	"github.com/iliyamo/hostel-room-booking/internal/model"
	"github.com/iliyamo/hostel-room-booking/internal/repository"
)

// ReviewStore is the slice of the review repository the endpoints need.
type ReviewStore interface {
	Create(ctx context.Context, rev *model.Review) error
	List(ctx context.Context, roomID uint64, limit int) ([]model.Review, error)
}

// ReviewHandler serves the append-only review log: gated create, public list.
type ReviewHandler struct {
	Reviews ReviewStore
}

func NewReviewHandler(r ReviewStore) *ReviewHandler { return &ReviewHandler{Reviews: r} }

type createReviewReq struct {
	RoomID uint64 `json:"roomId"`
	Name   string `json:"name"`
	// Rating is an optional 1..5 star score; 0 means the review carries none.
	Rating uint8  `json:"rating"`
	Body   string `json:"body"`
	// timeStamp is accepted in the body for backwards compatibility with the
	// frontend but is always replaced by the server clock.
	TimeStamp string `json:"timeStamp"`
}
type reviewResp struct {
	ID        uint64 `json:"id"`
	RoomID    uint64 `json:"roomId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Rating    uint8  `json:"rating"`
	Body      string `json:"body"`
	TimeStamp string `json:"timeStamp"`
}

// Create appends a review for the authenticated user.  The timestamp is
// assigned server-side at insert and the room's review count is incremented
// in the same transaction.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.RoomID == 0 || req.Body == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "roomId and body required"})
	}
	// rating is optional; when present it must be 1..5.  An explicit 0 is
	// indistinguishable from absence and stores as unrated.
	if req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "rating must be 1-5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rev := model.Review{
		RoomID:      req.RoomID,
		AuthorEmail: middleware.Identity(c),
		AuthorName:  req.Name,
		Rating:      req.Rating,
		Body:        req.Body,
	}
	if err := h.Reviews.Create(ctx, &rev); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create review failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"insertedId": rev.ID,
		"timeStamp":  rev.TimeStamp.Format(time.RFC3339),
	})
}

// List is the public review listing.  roomId narrows to one room; limit caps
// the result size, with 0 or absent meaning unbounded.
func (h *ReviewHandler) List(c echo.Context) error {
	var roomID uint64
	if v := c.QueryParam("roomId"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid roomId"})
		}
		roomID = n
	}
	limit := atoiOr(c.QueryParam("limit"), 0)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.List(ctx, roomID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	out := make([]reviewResp, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewResp{
			ID: r.ID, RoomID: r.RoomID, Email: r.AuthorEmail, Name: r.AuthorName,
			Rating: r.Rating, Body: r.Body, TimeStamp: r.TimeStamp.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, out)
}
