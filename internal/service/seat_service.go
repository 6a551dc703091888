package service

import (
	"context"

	"go-seat-booking/internal/model"
	"go-seat-booking/internal/repository"
	apperrors "go-seat-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatService interface {
	// CreateBatch inserts one AVAILABLE seat per code under the event,
	// bounded by the event's capacity. All or nothing.
	CreateBatch(ctx context.Context, eventID int, seatCodes []string) ([]*model.Seat, error)
	List(ctx context.Context) ([]*model.Seat, error)
	GetByID(ctx context.Context, id int) (*model.Seat, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Seat, error)
	Update(ctx context.Context, id int, params model.UpdateSeatParams) (*model.Seat, error)
	DeleteByIDs(ctx context.Context, ids []int) ([]*model.Seat, error)
}

type SeatServiceImpl struct {
	pool      *pgxpool.Pool
	repo      repository.SeatRepository
	eventRepo repository.EventRepository
}

func NewSeatService(pool *pgxpool.Pool, repo repository.SeatRepository, eventRepo repository.EventRepository) SeatService {
	return &SeatServiceImpl{
		pool:      pool,
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *SeatServiceImpl) CreateBatch(ctx context.Context, eventID int, seatCodes []string) ([]*model.Seat, error) {
	if len(seatCodes) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// lock the event row so the count check below stays valid until commit
	event, err := s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByEventID(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	if count+len(seatCodes) > event.Capacity {
		return nil, apperrors.ErrCapacityExceeded
	}

	seats := make([]*model.Seat, 0, len(seatCodes))
	for _, code := range seatCodes {
		seat := &model.Seat{
			EventID:  eventID,
			SeatCode: code,
			Status:   model.SeatStatusAvailable,
		}
		created, err := s.repo.Create(ctx, tx, seat)
		if err != nil {
			return nil, err
		}
		seats = append(seats, created)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return seats, nil
}

func (s *SeatServiceImpl) List(ctx context.Context) ([]*model.Seat, error) {
	return s.repo.List(ctx)
}

func (s *SeatServiceImpl) GetByID(ctx context.Context, id int) (*model.Seat, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SeatServiceImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Seat, error) {
	return s.repo.ListByEventID(ctx, eventID)
}

func (s *SeatServiceImpl) Update(ctx context.Context, id int, params model.UpdateSeatParams) (*model.Seat, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *SeatServiceImpl) DeleteByIDs(ctx context.Context, ids []int) ([]*model.Seat, error) {
	return s.repo.DeleteByIDs(ctx, ids)
}
