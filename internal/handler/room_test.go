package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/hostel-room-booking/internal/model"
	"github.com/iliyamo/hostel-room-booking/internal/repository"
)

func TestRoomListPassesFilter(t *testing.T) {
	rooms := &MockRoomStore{}
	h := NewRoomHandler(rooms)

	want := repository.RoomFilter{MaxPriceCents: 15000, SortDir: -1, Page: 2}
	page := []repository.RoomSummary{{ID: 9, Name: "Dorm 9", PriceCents: 12000}}
	rooms.On("List", mock.Anything, want).Return(page, 11, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/v1/room?priceRange=15000&sortingOrder=-1&currentPage=2", "")
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":11`)
	assert.Contains(t, rec.Body.String(), `"Dorm 9"`)
	rooms.AssertExpectations(t)
}

func TestRoomListNonNumericPageFallsBackToZero(t *testing.T) {
	rooms := &MockRoomStore{}
	h := NewRoomHandler(rooms)

	rooms.On("List", mock.Anything, repository.RoomFilter{Page: 0}).
		Return([]repository.RoomSummary{}, 0, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/v1/room?currentPage=abc", "")
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	rooms.AssertExpectations(t)
}

func TestRoomGetByID(t *testing.T) {
	rooms := &MockRoomStore{}
	h := NewRoomHandler(rooms)

	rooms.On("GetByID", mock.Anything, uint64(3)).Return(model.Room{
		ID: 3, Name: "Twin", PriceCents: 9000, SeatsAvailable: 2, ReviewCount: 5,
	}, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/v1/room/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	assert.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"seatsAvailable":2`)
}

func TestRoomGetByIDMalformed(t *testing.T) {
	rooms := &MockRoomStore{}
	h := NewRoomHandler(rooms)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/room/oops", "")
	c.SetParamNames("id")
	c.SetParamValues("oops")
	assert.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rooms.AssertNotCalled(t, "GetByID")
}

func TestRoomGetByIDNotFound(t *testing.T) {
	rooms := &MockRoomStore{}
	h := NewRoomHandler(rooms)

	rooms.On("GetByID", mock.Anything, uint64(99)).
		Return(model.Room{}, repository.ErrRoomNotFound).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/v1/room/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	assert.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoomMutateSeatsOnly(t *testing.T) {
	rooms := &MockRoomStore{}
	h := NewRoomHandler(rooms)

	rooms.On("ApplyMutation", mock.Anything, uint64(3), mock.MatchedBy(func(m repository.RoomMutation) bool {
		// seatsBooked travels alone: the review count must stay untouched.
		return m.SeatsBooked != nil && *m.SeatsBooked == 2 && m.ReviewCount == nil
	})).Return(nil).Once()

	c, rec := newJSONContext(http.MethodPatch, "/api/v1/room/3", `{"seatsBooked":2}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	assert.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	rooms.AssertExpectations(t)
}

func TestRoomMutateReviewCountOnly(t *testing.T) {
	rooms := &MockRoomStore{}
	h := NewRoomHandler(rooms)

	rooms.On("ApplyMutation", mock.Anything, uint64(3), mock.MatchedBy(func(m repository.RoomMutation) bool {
		return m.SeatsBooked == nil && m.ReviewCount != nil && *m.ReviewCount == 12
	})).Return(nil).Once()

	c, rec := newJSONContext(http.MethodPatch, "/api/v1/room/3", `{"reviewCountValue":12}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	assert.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	rooms.AssertExpectations(t)
}

func TestRoomMutateEmptyBody(t *testing.T) {
	rooms := &MockRoomStore{}
	h := NewRoomHandler(rooms)

	c, rec := newJSONContext(http.MethodPatch, "/api/v1/room/3", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	assert.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rooms.AssertNotCalled(t, "ApplyMutation")
}
