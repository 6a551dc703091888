package handler

import (
	"errors"
	"go-seat-booking/internal/model"
	"go-seat-booking/internal/service"
	apperrors "go-seat-booking/pkg/app_errors"
	"go-seat-booking/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/bookings")
	{
		router.GET("", h.List)
		router.GET("/admin", h.EventBookings)
		router.GET("/:id", h.GetByID)
		router.POST("", h.Create)
		router.PATCH("/:id", h.Update)
		router.DELETE("/:email", h.CancelByEmail)
	}
}

// UpdateBookingRequest is the payload for PATCH /bookings/:id.
type UpdateBookingRequest struct {
	SeatID *int                 `json:"seat_id"`
	Name   *string              `json:"name"`
	Email  *string              `json:"email"`
	Status *model.BookingStatus `json:"status"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	respond(c, http.StatusCreated, "Booking created successfully", created)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	respond(c, http.StatusOK, "", bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	booking, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	respond(c, http.StatusOK, "", booking)
}

func (h *BookingHandler) EventBookings(c *gin.Context) {
	reports, err := h.service.EventBookings(c)
	if err != nil {
		h.handleError(c, err, "EventBookings")
		return
	}
	respond(c, http.StatusOK, "", reports)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.SeatID == nil && req.Name == nil && req.Email == nil && req.Status == nil {
		respondError(c, http.StatusBadRequest, "At least one of seat_id, name, email or status is required")
		return
	}
	params := model.UpdateBookingParams{
		SeatID: req.SeatID,
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	respond(c, http.StatusOK, "Booking updated successfully", updated)
}

func (h *BookingHandler) CancelByEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		respondError(c, http.StatusBadRequest, "Invalid email")
		return
	}
	booking, err := h.service.CancelByEmail(c, email)
	if err != nil {
		h.handleError(c, err, "CancelByEmail")
		return
	}
	respond(c, http.StatusOK, "Booking removed successfully", booking)
}

func (h *BookingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrSeatNotFound):
		log.Warn("Seat not found")
		respondError(c, http.StatusNotFound, "Seat not found")
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		respondError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, apperrors.ErrSeatAlreadyBooked):
		log.Warn("Seat already booked")
		respondError(c, http.StatusConflict, "Seat already booked")
	case errors.Is(err, apperrors.ErrDuplicateBooking):
		log.Warn("Duplicate booking")
		respondError(c, http.StatusConflict, "Email has already booked a seat")
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		respondError(c, http.StatusBadRequest, "Invalid input")
	default:
		log.Error("Unexpected error")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
