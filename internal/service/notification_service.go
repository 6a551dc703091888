package service

import (
	"context"
	"errors"

	"go-seat-booking/internal/model"
	"go-seat-booking/internal/repository"
	apperrors "go-seat-booking/pkg/app_errors"
)

type NotificationService interface {
	Create(ctx context.Context, notification *model.Notification) (*model.Notification, error)
	List(ctx context.Context) ([]*model.Notification, error)
	GetByID(ctx context.Context, id int) (*model.Notification, error)
	Update(ctx context.Context, id int, params model.UpdateNotificationParams) (*model.Notification, error)
	Delete(ctx context.Context, id int) error
	// CheckBookSeats returns nil while any seat of the event is still
	// unbooked, otherwise the first FULL notification (nil if none is
	// configured).
	CheckBookSeats(ctx context.Context, eventID int) (*model.Notification, error)
}

type NotificationServiceImpl struct {
	repo     repository.NotificationRepository
	seatRepo repository.SeatRepository
}

func NewNotificationService(repo repository.NotificationRepository, seatRepo repository.SeatRepository) NotificationService {
	return &NotificationServiceImpl{
		repo:     repo,
		seatRepo: seatRepo,
	}
}

func (s *NotificationServiceImpl) Create(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	return s.repo.Create(ctx, notification)
}

func (s *NotificationServiceImpl) List(ctx context.Context) ([]*model.Notification, error) {
	return s.repo.List(ctx)
}

func (s *NotificationServiceImpl) GetByID(ctx context.Context, id int) (*model.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NotificationServiceImpl) Update(ctx context.Context, id int, params model.UpdateNotificationParams) (*model.Notification, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *NotificationServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *NotificationServiceImpl) CheckBookSeats(ctx context.Context, eventID int) (*model.Notification, error) {
	hasUnbooked, err := s.seatRepo.HasUnbookedSeats(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if hasUnbooked {
		return nil, nil
	}

	notification, err := s.repo.FindFirstByType(ctx, model.NotificationTypeFull)
	if err != nil {
		// an event can be full without a FULL notification configured
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return notification, nil
}
