package service

import (
	"context"
	"testing"

	"go-seat-booking/internal/model"
	"go-seat-booking/internal/repository"
	"go-seat-booking/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationService() service.NotificationService {
	pool := getTestDB()
	return service.NewNotificationService(
		repository.NewNotificationRepository(pool),
		repository.NewSeatRepository(pool),
	)
}

func TestNotificationService_CheckBookSeats(t *testing.T) {
	svc := newNotificationService()
	ctx := context.Background()

	t.Run("NilWhileSeatsRemain", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		createTestSeat(t, eventID, "A1", model.SeatStatusBooked)
		createTestSeat(t, eventID, "A2", model.SeatStatusAvailable)
		createTestNotification(t, model.NotificationTypeFull, "Sold out")

		notification, err := svc.CheckBookSeats(ctx, eventID)

		require.NoError(t, err)
		assert.Nil(t, notification)
	})

	t.Run("FullNotificationWhenAllBooked", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		createTestSeat(t, eventID, "A1", model.SeatStatusBooked)
		createTestSeat(t, eventID, "A2", model.SeatStatusBooked)
		createTestNotification(t, model.NotificationTypeFull, "Sold out")

		notification, err := svc.CheckBookSeats(ctx, eventID)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, model.NotificationTypeFull, notification.Type)
		assert.Equal(t, "Sold out", notification.Message)
	})

	t.Run("FullForEventWithoutSeats", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Empty Event", 10)
		createTestNotification(t, model.NotificationTypeFull, "Sold out")

		notification, err := svc.CheckBookSeats(ctx, eventID)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, model.NotificationTypeFull, notification.Type)
	})

	t.Run("NilWhenNoFullNotificationConfigured", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		createTestSeat(t, eventID, "A1", model.SeatStatusBooked)
		createTestNotification(t, model.NotificationTypeAvailable, "Seats released")

		notification, err := svc.CheckBookSeats(ctx, eventID)

		require.NoError(t, err)
		assert.Nil(t, notification)
	})
}
