package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-seat-booking/internal/model"
	apperrors "go-seat-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventBookingCount is one aggregate row of the admin report query.
type EventBookingCount struct {
	EventID     int
	Capacity    int
	BookedCount int
}

type BookingRepository interface {
	List(ctx context.Context) ([]*model.Booking, error)
	FindByID(ctx context.Context, id int) (*model.Booking, error)
	Update(ctx context.Context, id int, params model.UpdateBookingParams) (*model.Booking, error)
	ListEventBookingCounts(ctx context.Context) ([]*EventBookingCount, error)
	ListGuestsByEvent(ctx context.Context) (map[int][]model.BookingGuest, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error)
	FindByEmailWithLock(ctx context.Context, tx pgx.Tx, email string) (*model.Booking, error)
	DeleteByEmail(ctx context.Context, tx pgx.Tx, email string) error
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (seat_id, name, email, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, seat_id, name, email, status, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		booking.SeatID, booking.Name, booking.Email, booking.Status,
	).Scan(
		&booking.ID,
		&booking.SeatID,
		&booking.Name,
		&booking.Email,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateBooking
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) List(ctx context.Context) ([]*model.Booking, error) {
	query := `
		SELECT id, seat_id, name, email, status, created_at, updated_at
		FROM bookings
		ORDER BY seat_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)

	for rows.Next() {
		var booking model.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.SeatID,
			&booking.Name,
			&booking.Email,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	query := `
		SELECT id, seat_id, name, email, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking model.Booking
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.SeatID,
		&booking.Name,
		&booking.Email,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// FindByEmailWithLock locks the booking row during cancellation so the
// seat flip and the delete see a stable row.
func (r *BookingRepositoryImpl) FindByEmailWithLock(ctx context.Context, tx pgx.Tx, email string) (*model.Booking, error) {
	query := `
		SELECT id, seat_id, name, email, status, created_at, updated_at
		FROM bookings
		WHERE email = $1
		FOR UPDATE
	`

	var booking model.Booking
	err := tx.QueryRow(ctx, query, email).Scan(
		&booking.ID,
		&booking.SeatID,
		&booking.Name,
		&booking.Email,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateBookingParams) (*model.Booking, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.SeatID != nil {
		sets = append(sets, fmt.Sprintf("seat_id = $%d", argPos))
		args = append(args, *params.SeatID)
		argPos++
	}

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", argPos))
		args = append(args, *params.Email)
		argPos++
	}

	if params.Status != nil {
		if !params.Status.IsValid() {
			return nil, apperrors.ErrInvalidInput
		}
		sets = append(sets, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *params.Status)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE bookings
		SET %s
		WHERE id = $%d
		RETURNING id, seat_id, name, email, status, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)

	var booking model.Booking

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&booking.ID,
		&booking.SeatID,
		&booking.Name,
		&booking.Email,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateBooking
		}
		return nil, err
	}

	return &booking, nil
}

func (r *BookingRepositoryImpl) DeleteByEmail(ctx context.Context, tx pgx.Tx, email string) error {
	query := `
		DELETE FROM bookings
		WHERE email = $1
	`

	result, err := tx.Exec(ctx, query, email)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// ListEventBookingCounts aggregates booked seats per event in one query
// instead of querying event by event.
func (r *BookingRepositoryImpl) ListEventBookingCounts(ctx context.Context) ([]*EventBookingCount, error) {
	query := `
		SELECT e.id, e.capacity, COUNT(b.id)
		FROM events e
		LEFT JOIN seats s ON s.event_id = e.id
		LEFT JOIN bookings b ON b.seat_id = s.id
		GROUP BY e.id, e.capacity, e.created_at
		ORDER BY e.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]*EventBookingCount, 0)
	for rows.Next() {
		var c EventBookingCount
		if err := rows.Scan(&c.EventID, &c.Capacity, &c.BookedCount); err != nil {
			return nil, err
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *BookingRepositoryImpl) ListGuestsByEvent(ctx context.Context) (map[int][]model.BookingGuest, error) {
	query := `
		SELECT s.event_id, b.name, b.email
		FROM bookings b
		JOIN seats s ON b.seat_id = s.id
		ORDER BY s.event_id, b.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make(map[int][]model.BookingGuest)
	for rows.Next() {
		var eventID int
		var guest model.BookingGuest
		if err := rows.Scan(&eventID, &guest.Name, &guest.Email); err != nil {
			return nil, err
		}
		guests[eventID] = append(guests[eventID], guest)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return guests, nil
}
