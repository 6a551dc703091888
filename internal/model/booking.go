package model

import "time"

// BookingStatus is the lifecycle state of a booking row.
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "BOOKED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusBooked, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking reserves exactly one seat for a guest. Its existence implies
// the referenced seat is BOOKED; cancelling it releases the seat.
type Booking struct {
	ID        int           `json:"id" db:"id"`
	SeatID    int           `json:"seat_id" db:"seat_id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Status    BookingStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

type UpdateBookingParams struct {
	SeatID *int
	Name   *string
	Email  *string
	Status *BookingStatus
}

// CreateBookingRequest is the payload for POST /bookings.
type CreateBookingRequest struct {
	SeatID int    `json:"seat_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

// BookingGuest is one row of the admin report's guest list.
type BookingGuest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventBookingsReport aggregates bookings under one event for GET /bookings/admin.
type EventBookingsReport struct {
	EventID        int            `json:"event_id"`
	Bookings       []BookingGuest `json:"bookings"`
	AvailableSeats int            `json:"availableSeats"`
	Status         string         `json:"status"` // "Available" or "Full"
}

// Queue event types for booking lifecycle messages.
const (
	BookingEventCreated   = "booking.created"
	BookingEventCancelled = "booking.cancelled"
)

// BookingEvent is published after a booking transaction commits and
// consumed by the notification worker.
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID int       `json:"booking_id"`
	SeatID    int       `json:"seat_id"`
	EventID   int       `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
