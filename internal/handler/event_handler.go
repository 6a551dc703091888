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

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/events")
	{
		router.GET("", h.List)
		router.GET("/:id", h.GetByID)
		router.POST("", h.Create)
		router.PATCH("/:id", h.Update)
		router.DELETE("/:id", h.Delete)
	}
}

// CreateEventRequest is the payload for POST /events.
type CreateEventRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

// UpdateEventRequest is the payload for PATCH /events/:id.
type UpdateEventRequest struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	respond(c, http.StatusOK, "", events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	event, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	respond(c, http.StatusOK, "", event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	event := &model.Event{
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	respond(c, http.StatusCreated, "Event created successfully", created)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.Capacity == nil {
		respondError(c, http.StatusBadRequest, "At least one of name or capacity is required")
		return
	}
	params := model.UpdateEventParams{
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	respond(c, http.StatusOK, "Event updated successfully", updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	err := h.service.Delete(c, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	respond(c, http.StatusOK, "Event removed successfully", gin.H{"id": id})
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		respondError(c, http.StatusNotFound, "Event not found")
	case errors.Is(err, apperrors.ErrEventNameTaken):
		log.Warn("Event name already exists")
		respondError(c, http.StatusConflict, "Event name already exists")
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		respondError(c, http.StatusBadRequest, "Invalid input")
	default:
		log.Error("Unexpected error")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
