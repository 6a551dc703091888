package handler

import (
	"net/http"
	"testing"

	"go-seat-booking/internal/handler"
	"go-seat-booking/internal/model"
	apperrors "go-seat-booking/pkg/app_errors"
	"go-seat-booking/test/internal/mocks/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookingHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(services.BookingServiceMock)
		h := handler.NewBookingHandler(svc)

		created := &model.Booking{
			ID:     1,
			SeatID: 5,
			Name:   "Alice",
			Email:  "alice@example.com",
			Status: model.BookingStatusBooked,
		}
		svc.On("Create", mock.Anything, model.CreateBookingRequest{
			SeatID: 5,
			Name:   "Alice",
			Email:  "alice@example.com",
		}).Return(created, nil)

		req := createJSONRequest(t, http.MethodPost, "/bookings", gin.H{
			"seat_id": 5,
			"name":    "Alice",
			"email":   "alice@example.com",
		})
		w := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeResponse(t, w)
		assert.Equal(t, "Booking created successfully", body["message"])
		svc.AssertExpectations(t)
	})

	t.Run("InvalidEmailFormat", func(t *testing.T) {
		svc := new(services.BookingServiceMock)
		h := handler.NewBookingHandler(svc)

		req := createJSONRequest(t, http.MethodPost, "/bookings", gin.H{
			"seat_id": 5,
			"name":    "Alice",
			"email":   "not-an-email",
		})
		w := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("SeatAlreadyBooked", func(t *testing.T) {
		svc := new(services.BookingServiceMock)
		h := handler.NewBookingHandler(svc)

		svc.On("Create", mock.Anything, mock.AnythingOfType("model.CreateBookingRequest")).
			Return(nil, apperrors.ErrSeatAlreadyBooked)

		req := createJSONRequest(t, http.MethodPost, "/bookings", gin.H{
			"seat_id": 5,
			"name":    "Bob",
			"email":   "bob@example.com",
		})
		w := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("SeatNotFound", func(t *testing.T) {
		svc := new(services.BookingServiceMock)
		h := handler.NewBookingHandler(svc)

		svc.On("Create", mock.Anything, mock.AnythingOfType("model.CreateBookingRequest")).
			Return(nil, apperrors.ErrSeatNotFound)

		req := createJSONRequest(t, http.MethodPost, "/bookings", gin.H{
			"seat_id": 99,
			"name":    "Bob",
			"email":   "bob@example.com",
		})
		w := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc := new(services.BookingServiceMock)
		h := handler.NewBookingHandler(svc)

		svc.On("Create", mock.Anything, mock.AnythingOfType("model.CreateBookingRequest")).
			Return(nil, apperrors.ErrDuplicateBooking)

		req := createJSONRequest(t, http.MethodPost, "/bookings", gin.H{
			"seat_id": 5,
			"name":    "Alice",
			"email":   "alice@example.com",
		})
		w := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestBookingHandler_List(t *testing.T) {
	svc := new(services.BookingServiceMock)
	h := handler.NewBookingHandler(svc)

	bookings := []*model.Booking{
		{ID: 1, SeatID: 1, Name: "Alice", Email: "alice@example.com", Status: model.BookingStatusBooked},
	}
	svc.On("List", mock.Anything).Return(bookings, nil)

	req := createJSONRequest(t, http.MethodGet, "/bookings", nil)
	w := serveRequest(h.RegisterRoutes, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingHandler_EventBookings(t *testing.T) {
	svc := new(services.BookingServiceMock)
	h := handler.NewBookingHandler(svc)

	reports := []*model.EventBookingsReport{
		{
			EventID:        1,
			Bookings:       []model.BookingGuest{{Name: "Alice", Email: "alice@example.com"}},
			AvailableSeats: 8,
			Status:         "Available",
		},
		{
			EventID:        2,
			Bookings:       []model.BookingGuest{},
			AvailableSeats: 0,
			Status:         "Full",
		},
	}
	svc.On("EventBookings", mock.Anything).Return(reports, nil)

	req := createJSONRequest(t, http.MethodGet, "/bookings/admin", nil)
	w := serveRequest(h.RegisterRoutes, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	data := body["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["event_id"])
	assert.Equal(t, float64(8), first["availableSeats"])
	assert.Equal(t, "Available", first["status"])
}

func TestBookingHandler_GetByID(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		svc := new(services.BookingServiceMock)
		h := handler.NewBookingHandler(svc)

		svc.On("GetByID", mock.Anything, 99).Return(nil, apperrors.ErrBookingNotFound)

		req := createJSONRequest(t, http.MethodGet, "/bookings/99", nil)
		w := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookingHandler_CancelByEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(services.BookingServiceMock)
		h := handler.NewBookingHandler(svc)

		cancelled := &model.Booking{ID: 1, SeatID: 5, Name: "Alice", Email: "alice@example.com"}
		svc.On("CancelByEmail", mock.Anything, "alice@example.com").Return(cancelled, nil)

		req := createJSONRequest(t, http.MethodDelete, "/bookings/alice@example.com", nil)
		w := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.Equal(t, "Booking removed successfully", body["message"])
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(services.BookingServiceMock)
		h := handler.NewBookingHandler(svc)

		svc.On("CancelByEmail", mock.Anything, "nobody@example.com").
			Return(nil, apperrors.ErrBookingNotFound)

		req := createJSONRequest(t, http.MethodDelete, "/bookings/nobody@example.com", nil)
		w := serveRequest(h.RegisterRoutes, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
