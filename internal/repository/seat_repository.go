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

type SeatRepository interface {
	List(ctx context.Context) ([]*model.Seat, error)
	FindByID(ctx context.Context, id int) (*model.Seat, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Seat, error)
	Update(ctx context.Context, id int, params model.UpdateSeatParams) (*model.Seat, error)
	DeleteByIDs(ctx context.Context, ids []int) ([]*model.Seat, error)
	HasUnbookedSeats(ctx context.Context, eventID int) (bool, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, seat *model.Seat) (*model.Seat, error)
	CountByEventID(ctx context.Context, tx pgx.Tx, eventID int) (int, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Seat, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.SeatStatus) error
}

type SeatRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSeatRepository(pool *pgxpool.Pool) SeatRepository {
	return &SeatRepositoryImpl{
		pool: pool,
	}
}

func (r *SeatRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, seat *model.Seat) (*model.Seat, error) {
	query := `
		INSERT INTO seats (event_id, seat_code, status)
		VALUES ($1, $2, $3)
		RETURNING id, event_id, seat_code, status, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		seat.EventID, seat.SeatCode, seat.Status,
	).Scan(
		&seat.ID,
		&seat.EventID,
		&seat.SeatCode,
		&seat.Status,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateSeatCode
		}
		return nil, err
	}

	return seat, nil
}

func (r *SeatRepositoryImpl) List(ctx context.Context) ([]*model.Seat, error) {
	query := `
		SELECT id, event_id, seat_code, status, created_at, updated_at
		FROM seats
		ORDER BY event_id, seat_code
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSeats(rows)
}

func (r *SeatRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Seat, error) {
	query := `
		SELECT id, event_id, seat_code, status, created_at, updated_at
		FROM seats
		WHERE event_id = $1
		ORDER BY seat_code
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSeats(rows)
}

func (r *SeatRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Seat, error) {
	query := `
		SELECT id, event_id, seat_code, status, created_at, updated_at
		FROM seats
		WHERE id = $1
	`

	var seat model.Seat
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.EventID,
		&seat.SeatCode,
		&seat.Status,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSeatNotFound
		}
		return nil, err
	}

	return &seat, nil
}

// FindByIDWithLock takes a row-level write lock on the seat. Concurrent
// booking attempts on the same seat serialize here.
func (r *SeatRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Seat, error) {
	query := `
		SELECT id, event_id, seat_code, status, created_at, updated_at
		FROM seats
		WHERE id = $1
		FOR UPDATE
	`

	var seat model.Seat
	err := tx.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.EventID,
		&seat.SeatCode,
		&seat.Status,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSeatNotFound
		}
		return nil, err
	}

	return &seat, nil
}

func (r *SeatRepositoryImpl) CountByEventID(ctx context.Context, tx pgx.Tx, eventID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM seats
		WHERE event_id = $1
	`

	var count int
	err := tx.QueryRow(ctx, query, eventID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *SeatRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateSeatParams) (*model.Seat, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.EventID != nil {
		sets = append(sets, fmt.Sprintf("event_id = $%d", argPos))
		args = append(args, *params.EventID)
		argPos++
	}

	if params.SeatCode != nil {
		sets = append(sets, fmt.Sprintf("seat_code = $%d", argPos))
		args = append(args, *params.SeatCode)
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
		UPDATE seats
		SET %s
		WHERE id = $%d
		RETURNING id, event_id, seat_code, status, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)

	var seat model.Seat

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&seat.ID,
		&seat.EventID,
		&seat.SeatCode,
		&seat.Status,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSeatNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateSeatCode
		}
		return nil, err
	}

	return &seat, nil
}

func (r *SeatRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.SeatStatus) error {
	query := `
		UPDATE seats
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := tx.Exec(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrSeatNotFound
	}

	return nil
}

func (r *SeatRepositoryImpl) DeleteByIDs(ctx context.Context, ids []int) ([]*model.Seat, error) {
	if len(ids) == 0 {
		return []*model.Seat{}, nil
	}

	query := `
		DELETE FROM seats
		WHERE id = ANY($1)
		RETURNING id, event_id, seat_code, status, created_at, updated_at
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats, err := scanSeats(rows)
	if err != nil {
		return nil, err
	}

	if len(seats) == 0 {
		return nil, apperrors.ErrSeatNotFound
	}

	return seats, nil
}

// HasUnbookedSeats reports whether any seat of the event is still not BOOKED.
func (r *SeatRepositoryImpl) HasUnbookedSeats(ctx context.Context, eventID int) (bool, error) {
	query := `
		SELECT 1
		FROM seats
		WHERE event_id = $1 AND status != $2
		LIMIT 1
	`

	var one int
	err := r.pool.QueryRow(ctx, query, eventID, model.SeatStatusBooked).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func scanSeats(rows pgx.Rows) ([]*model.Seat, error) {
	seats := make([]*model.Seat, 0)
	for rows.Next() {
		var seat model.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.EventID,
			&seat.SeatCode,
			&seat.Status,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
