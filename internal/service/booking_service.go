package service

import (
	"context"
	"time"

	"go-seat-booking/internal/model"
	"go-seat-booking/internal/queue"
	"go-seat-booking/internal/repository"
	apperrors "go-seat-booking/pkg/app_errors"
	"go-seat-booking/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BookingService interface {
	// Create reserves a seat: lock the seat row, verify it is still
	// AVAILABLE, insert the booking and flip the seat, all in one
	// transaction.
	Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	GetByID(ctx context.Context, id int) (*model.Booking, error)
	Update(ctx context.Context, id int, params model.UpdateBookingParams) (*model.Booking, error)
	// CancelByEmail releases the seat and deletes the booking row.
	CancelByEmail(ctx context.Context, email string) (*model.Booking, error)
	// EventBookings builds the per-event admin report.
	EventBookings(ctx context.Context) ([]*model.EventBookingsReport, error)
}

type BookingServiceImpl struct {
	pool       *pgxpool.Pool
	repository repository.BookingRepository
	seatRepo   repository.SeatRepository
	queue      queue.BookingQueue
}

func NewBookingService(
	pool *pgxpool.Pool,
	bookingRepository repository.BookingRepository,
	seatRepository repository.SeatRepository,
	bookingQueue queue.BookingQueue,
) BookingService {
	return &BookingServiceImpl{
		pool:       pool,
		repository: bookingRepository,
		seatRepo:   seatRepository,
		queue:      bookingQueue,
	}
}

func (s *BookingServiceImpl) Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// the row lock serializes concurrent attempts on the same seat: the
	// second request blocks here until the first commits, then sees BOOKED
	seat, err := s.seatRepo.FindByIDWithLock(ctx, tx, req.SeatID)
	if err != nil {
		return nil, err
	}

	if !seat.IsBookable() {
		return nil, apperrors.ErrSeatAlreadyBooked
	}

	booking := &model.Booking{
		SeatID: req.SeatID,
		Name:   req.Name,
		Email:  req.Email,
		Status: model.BookingStatusBooked,
	}

	created, err := s.repository.Create(ctx, tx, booking)
	if err != nil {
		return nil, err
	}

	err = s.seatRepo.UpdateStatus(ctx, tx, seat.ID, model.SeatStatusBooked)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, model.BookingEventCreated, created, seat.EventID)

	return created, nil
}

func (s *BookingServiceImpl) List(ctx context.Context) ([]*model.Booking, error) {
	return s.repository.List(ctx)
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id int) (*model.Booking, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *BookingServiceImpl) Update(ctx context.Context, id int, params model.UpdateBookingParams) (*model.Booking, error) {
	return s.repository.Update(ctx, id, params)
}

func (s *BookingServiceImpl) CancelByEmail(ctx context.Context, email string) (*model.Booking, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, err := s.repository.FindByEmailWithLock(ctx, tx, email)
	if err != nil {
		return nil, err
	}

	// release the seat before deleting the booking row
	err = s.seatRepo.UpdateStatus(ctx, tx, booking.SeatID, model.SeatStatusAvailable)
	if err != nil {
		return nil, err
	}

	err = s.repository.DeleteByEmail(ctx, tx, email)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	seat, err := s.seatRepo.FindByID(ctx, booking.SeatID)
	if err == nil {
		s.publishEvent(ctx, model.BookingEventCancelled, booking, seat.EventID)
	}

	return booking, nil
}

func (s *BookingServiceImpl) EventBookings(ctx context.Context) ([]*model.EventBookingsReport, error) {
	counts, err := s.repository.ListEventBookingCounts(ctx)
	if err != nil {
		return nil, err
	}

	guests, err := s.repository.ListGuestsByEvent(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]*model.EventBookingsReport, 0, len(counts))
	for _, c := range counts {
		available := c.Capacity - c.BookedCount

		status := "Available"
		if available <= 0 {
			status = "Full"
		}

		eventGuests := guests[c.EventID]
		if eventGuests == nil {
			eventGuests = []model.BookingGuest{}
		}

		reports = append(reports, &model.EventBookingsReport{
			EventID:        c.EventID,
			Bookings:       eventGuests,
			AvailableSeats: available,
			Status:         status,
		})
	}

	return reports, nil
}

// publishEvent emits a lifecycle event after the transaction committed.
// The booking itself already succeeded, so a publish failure is only logged.
func (s *BookingServiceImpl) publishEvent(ctx context.Context, eventType string, booking *model.Booking, eventID int) {
	event := &model.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		SeatID:    booking.SeatID,
		EventID:   eventID,
		Email:     booking.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.queue.PublishEvent(ctx, event); err != nil {
		logger.WithComponent("service").Warn("failed to publish booking event",
			zap.String("type", eventType),
			zap.Int("booking_id", booking.ID),
			zap.Error(err),
		)
	}
}
