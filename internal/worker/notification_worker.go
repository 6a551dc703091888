package worker

import (
	"context"
	"go-seat-booking/internal/model"
	"go-seat-booking/internal/queue"
	"go-seat-booking/internal/service"
	"go-seat-booking/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// Subscribe to the booking event queue
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	service service.NotificationService
	queue   queue.BookingQueue
}

func NewNotificationWorker(service service.NotificationService, queue queue.BookingQueue) NotificationWorker {
	return &NotificationWorkerImpl{
		service: service,
		queue:   queue,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, _ := w.queue.SubscribeEvents(ctx)

	go func() {
		for msg := range msgs {
			err := w.handle(ctx, msg.Data)

			if err != nil {
				// likely a transient database error, retry later
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}

func (w *NotificationWorkerImpl) handle(ctx context.Context, event *model.BookingEvent) error {
	log := logger.WithComponent("worker")

	switch event.Type {
	case model.BookingEventCreated:
		// this booking may have taken the event's last seat
		notification, err := w.service.CheckBookSeats(ctx, event.EventID)
		if err != nil {
			return err
		}
		if notification != nil {
			log.Info("event sold out",
				zap.Int("event_id", event.EventID),
				zap.Int("seat_id", event.SeatID),
				zap.String("notification", notification.Message),
			)
		}
	case model.BookingEventCancelled:
		log.Info("seat released",
			zap.Int("event_id", event.EventID),
			zap.Int("seat_id", event.SeatID),
		)
	default:
		log.Warn("unknown booking event type", zap.String("type", event.Type))
	}

	return nil
}
