package model

import "time"

// SeatStatus mirrors the seat_status enum in the database.
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "AVAILABLE"
	SeatStatusBooked    SeatStatus = "BOOKED"
)

func (s SeatStatus) IsValid() bool {
	switch s {
	case SeatStatusAvailable, SeatStatusBooked:
		return true
	}
	return false
}

type Seat struct {
	ID        int        `json:"id" db:"id"`
	EventID   int        `json:"event_id" db:"event_id"`
	SeatCode  string     `json:"seat_code" db:"seat_code"`
	Status    SeatStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// IsBookable reports whether a booking may claim this seat.
func (s *Seat) IsBookable() bool {
	return s.Status == SeatStatusAvailable
}

type UpdateSeatParams struct {
	EventID  *int
	SeatCode *string
	Status   *SeatStatus
}
