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

type SeatHandler struct {
	service service.SeatService
}

func NewSeatHandler(service service.SeatService) *SeatHandler {
	return &SeatHandler{service: service}
}

func (h *SeatHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/seats")
	{
		router.GET("", h.List)
		router.GET("/:id", h.GetByID)
		router.GET("/event/:id", h.ListByEvent)
		router.POST("", h.CreateBatch)
		router.PATCH("/:id", h.Update)
		router.DELETE("", h.DeleteBatch)
	}
}

// CreateSeatsRequest is the payload for POST /seats.
type CreateSeatsRequest struct {
	EventID   int      `json:"event_id" binding:"required"`
	SeatCodes []string `json:"seat_codes" binding:"required,min=1,dive,required"`
}

// UpdateSeatRequest is the payload for PATCH /seats/:id.
type UpdateSeatRequest struct {
	EventID  *int              `json:"event_id"`
	SeatCode *string           `json:"seat_code"`
	Status   *model.SeatStatus `json:"status"`
}

// DeleteSeatsRequest is the payload for DELETE /seats.
type DeleteSeatsRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

func (h *SeatHandler) CreateBatch(c *gin.Context) {
	var req CreateSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	seats, err := h.service.CreateBatch(c, req.EventID, req.SeatCodes)
	if err != nil {
		h.handleError(c, err, "CreateBatch")
		return
	}
	respond(c, http.StatusCreated, "Seat created successfully", seats)
}

func (h *SeatHandler) List(c *gin.Context) {
	seats, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	respond(c, http.StatusOK, "", seats)
}

func (h *SeatHandler) GetByID(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	seat, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	respond(c, http.StatusOK, "", seat)
}

func (h *SeatHandler) ListByEvent(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	seats, err := h.service.ListByEventID(c, id)
	if err != nil {
		h.handleError(c, err, "ListByEvent")
		return
	}
	respond(c, http.StatusOK, "", seats)
}

func (h *SeatHandler) Update(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	var req UpdateSeatRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.EventID == nil && req.SeatCode == nil && req.Status == nil {
		respondError(c, http.StatusBadRequest, "At least one of event_id, seat_code or status is required")
		return
	}
	params := model.UpdateSeatParams{
		EventID:  req.EventID,
		SeatCode: req.SeatCode,
		Status:   req.Status,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	respond(c, http.StatusOK, "Seat updated successfully", updated)
}

func (h *SeatHandler) DeleteBatch(c *gin.Context) {
	var req DeleteSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	deleted, err := h.service.DeleteByIDs(c, req.IDs)
	if err != nil {
		h.handleError(c, err, "DeleteBatch")
		return
	}
	respond(c, http.StatusOK, "Seat(s) removed successfully", deleted)
}

func (h *SeatHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		respondError(c, http.StatusNotFound, "Event not found")
	case errors.Is(err, apperrors.ErrSeatNotFound):
		log.Warn("Seat not found")
		respondError(c, http.StatusNotFound, "Seat not found")
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		log.Warn("Capacity exceeded")
		respondError(c, http.StatusBadRequest, "Event capacity exceeded")
	case errors.Is(err, apperrors.ErrDuplicateSeatCode):
		log.Warn("Duplicate seat code")
		respondError(c, http.StatusConflict, "Seat already exists in this event")
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		respondError(c, http.StatusBadRequest, "Invalid input")
	default:
		log.Error("Unexpected error")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
