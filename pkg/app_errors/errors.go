package apperrors

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrSeatNotFound         = errors.New("seat not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrEventNameTaken        = errors.New("event name already exists")
	ErrDuplicateSeatCode     = errors.New("seat code already exists in event")
	ErrSeatAlreadyBooked     = errors.New("seat already booked")
	ErrDuplicateBooking      = errors.New("email has already booked a seat")
	ErrDuplicateNotification = errors.New("notification already exists")

	ErrCapacityExceeded    = errors.New("event capacity exceeded")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
