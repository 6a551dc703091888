package queue

import (
	"context"
	"go-seat-booking/internal/model"
)

type Delivery struct {
	Data *model.BookingEvent
	Ack  func()
	Nack func(requeue bool)
}

type BookingQueue interface {
	// Publish a booking lifecycle event to the queue
	PublishEvent(ctx context.Context, event *model.BookingEvent) error
	// Subscribe to booking lifecycle events
	SubscribeEvents(ctx context.Context) (<-chan Delivery, error)
}

// BookingQueueImpl is an in-memory queue backed by a Go channel,
// used in tests and single-process deployments.
type BookingQueueImpl struct {
	ch chan *model.BookingEvent
}

func NewBookingQueue(bufferSize int) BookingQueue {
	return &BookingQueueImpl{
		ch: make(chan *model.BookingEvent, bufferSize),
	}
}

func (q *BookingQueueImpl) PublishEvent(ctx context.Context, event *model.BookingEvent) error {
	q.ch <- event
	return nil
}

func (q *BookingQueueImpl) SubscribeEvents(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: event,
					Ack:  func() { /* nothing to do for the memory queue */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- event
						}
					},
				}
			}
		}
	}()

	return out, nil
}
