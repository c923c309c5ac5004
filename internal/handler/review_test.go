package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/hostel-room-booking/internal/model"
	"github.com/iliyamo/hostel-room-booking/internal/repository"
)

func TestReviewCreateIgnoresClientTimestamp(t *testing.T) {
	reviews := &MockReviewStore{}
	h := NewReviewHandler(reviews)

	stamped := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(rev *model.Review) bool {
		// The client-supplied timeStamp never reaches the store; the zero
		// value shows the server (repository) owns the stamp.
		return rev.RoomID == 3 && rev.AuthorEmail == "a@x.com" && rev.TimeStamp.IsZero()
	})).Run(func(args mock.Arguments) {
		rev := args.Get(1).(*model.Review)
		rev.ID = 10
		rev.TimeStamp = stamped
	}).Return(nil).Once()

	c, rec := newJSONContext(http.MethodPost, "/api/v1/review",
		`{"roomId":3,"rating":5,"body":"great stay","timeStamp":"1999-01-01T00:00:00Z"}`)
	asUser(c, "a@x.com")
	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"2026-08-28T12:00:00Z"`)
	assert.NotContains(t, rec.Body.String(), "1999")
	reviews.AssertExpectations(t)
}

// TestReviewCreateWithoutRating verifies that rating is optional: a body with
// just roomId and body is accepted and stored unrated.
func TestReviewCreateWithoutRating(t *testing.T) {
	reviews := &MockReviewStore{}
	h := NewReviewHandler(reviews)

	reviews.On("Create", mock.Anything, mock.MatchedBy(func(rev *model.Review) bool {
		return rev.RoomID == 3 && rev.Body == "great stay" && rev.Rating == 0
	})).Run(func(args mock.Arguments) {
		rev := args.Get(1).(*model.Review)
		rev.ID = 11
		rev.TimeStamp = time.Now().UTC()
	}).Return(nil).Once()

	c, rec := newJSONContext(http.MethodPost, "/api/v1/review", `{"roomId":3,"body":"great stay"}`)
	asUser(c, "a@x.com")
	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insertedId":11`)
	reviews.AssertExpectations(t)
}

func TestReviewCreateValidation(t *testing.T) {
	reviews := &MockReviewStore{}
	h := NewReviewHandler(reviews)

	cases := []struct {
		name string
		body string
	}{
		{"missing room", `{"rating":5,"body":"x"}`},
		{"missing body", `{"roomId":3,"rating":5}`},
		{"rating too high", `{"roomId":3,"rating":6,"body":"x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPost, "/api/v1/review", tc.body)
			asUser(c, "a@x.com")
			assert.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	reviews.AssertNotCalled(t, "Create")
}

func TestReviewCreateRoomMissing(t *testing.T) {
	reviews := &MockReviewStore{}
	h := NewReviewHandler(reviews)

	reviews.On("Create", mock.Anything, mock.Anything).
		Return(repository.ErrRoomNotFound).Once()

	c, rec := newJSONContext(http.MethodPost, "/api/v1/review", `{"roomId":99,"rating":4,"body":"x"}`)
	asUser(c, "a@x.com")
	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewListLimit(t *testing.T) {
	reviews := &MockReviewStore{}
	h := NewReviewHandler(reviews)

	out := []model.Review{
		{ID: 2, RoomID: 3, Body: "newer", TimeStamp: time.Now().UTC()},
		{ID: 1, RoomID: 3, Body: "older", TimeStamp: time.Now().UTC().Add(-time.Hour)},
	}
	reviews.On("List", mock.Anything, uint64(3), 2).Return(out, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/v1/reviews?roomId=3&limit=2", "")
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	reviews.AssertExpectations(t)
}

func TestReviewListUnbounded(t *testing.T) {
	reviews := &MockReviewStore{}
	h := NewReviewHandler(reviews)

	// No limit parameter means limit 0: unbounded.
	reviews.On("List", mock.Anything, uint64(0), 0).Return([]model.Review{}, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/v1/reviews", "")
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	reviews.AssertExpectations(t)
}

func TestReviewListBadRoomID(t *testing.T) {
	reviews := &MockReviewStore{}
	h := NewReviewHandler(reviews)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/reviews?roomId=xyz", "")
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	reviews.AssertNotCalled(t, "List")
}
