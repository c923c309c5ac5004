package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/hostel-room-booking/internal/model"
	"github.com/iliyamo/hostel-room-booking/internal/queue"
	"github.com/iliyamo/hostel-room-booking/internal/repository"
)

// Mock stores implementing the handler-facing interfaces.

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *model.User) (uint64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) List(ctx context.Context, f repository.RoomFilter) ([]repository.RoomSummary, int, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]repository.RoomSummary), args.Int(1), args.Error(2)
}

func (m *MockRoomStore) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Room), args.Error(1)
}

func (m *MockRoomStore) ApplyMutation(ctx context.Context, id uint64, mut repository.RoomMutation) error {
	args := m.Called(ctx, id, mut)
	return args.Error(0)
}

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Create(ctx context.Context, b *model.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingStore) List(ctx context.Context, f repository.BookingFilter) ([]model.Booking, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateDate(ctx context.Context, id uint64, guestEmail, newDate string) error {
	args := m.Called(ctx, id, guestEmail, newDate)
	return args.Error(0)
}

func (m *MockBookingStore) Delete(ctx context.Context, id uint64, guestEmail string) error {
	args := m.Called(ctx, id, guestEmail)
	return args.Error(0)
}

type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(ctx context.Context, rev *model.Review) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *MockReviewStore) List(ctx context.Context, roomID uint64, limit int) ([]model.Review, error) {
	args := m.Called(ctx, roomID, limit)
	return args.Get(0).([]model.Review), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

// newJSONContext builds an Echo context for a JSON request and returns the
// recorder capturing the response.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser marks the context as authenticated, mirroring what SessionAuth does
// for gated routes.
func asUser(c echo.Context, email string) {
	c.Set("email", email)
}
