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

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/notifications")
	{
		router.GET("", h.List)
		router.GET("/:id", h.GetByID)
		router.GET("/check/:id", h.CheckBookSeats)
		router.POST("", h.Create)
		router.PATCH("/:id", h.Update)
		router.DELETE("/:id", h.Delete)
	}
}

// CreateNotificationRequest is the payload for POST /notifications.
type CreateNotificationRequest struct {
	Type    string `json:"type" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateNotificationRequest is the payload for PATCH /notifications/:id.
type UpdateNotificationRequest struct {
	Type    *string `json:"type"`
	Message *string `json:"message"`
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	notification := &model.Notification{
		Type:    req.Type,
		Message: req.Message,
	}
	created, err := h.service.Create(c, notification)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	respond(c, http.StatusCreated, "Notification created successfully", created)
}

func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	respond(c, http.StatusOK, "", notifications)
}

func (h *NotificationHandler) GetByID(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	notification, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	respond(c, http.StatusOK, "", notification)
}

// CheckBookSeats returns the FULL notification once every seat of the
// event is booked, otherwise a null payload.
func (h *NotificationHandler) CheckBookSeats(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	notification, err := h.service.CheckBookSeats(c, id)
	if err != nil {
		h.handleError(c, err, "CheckBookSeats")
		return
	}
	respond(c, http.StatusOK, "", notification)
}

func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	var req UpdateNotificationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Type == nil && req.Message == nil {
		respondError(c, http.StatusBadRequest, "At least one of type or message is required")
		return
	}
	params := model.UpdateNotificationParams{
		Type:    req.Type,
		Message: req.Message,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	respond(c, http.StatusOK, "Notification updated successfully", updated)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	err := h.service.Delete(c, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	respond(c, http.StatusOK, "Notification removed successfully", gin.H{"id": id})
}

func (h *NotificationHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrNotificationNotFound):
		log.Warn("Notification not found")
		respondError(c, http.StatusNotFound, "Notification not found")
	case errors.Is(err, apperrors.ErrDuplicateNotification):
		log.Warn("Duplicate notification")
		respondError(c, http.StatusConflict, "Notification already exists")
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		respondError(c, http.StatusBadRequest, "Invalid input")
	default:
		log.Error("Unexpected error")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
