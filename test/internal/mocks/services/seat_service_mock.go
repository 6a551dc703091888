package services

import (
	"context"

	"go-seat-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type SeatServiceMock struct {
	mock.Mock
}

func (m *SeatServiceMock) CreateBatch(ctx context.Context, eventID int, seatCodes []string) ([]*model.Seat, error) {
	args := m.Called(ctx, eventID, seatCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Seat), args.Error(1)
}

func (m *SeatServiceMock) List(ctx context.Context) ([]*model.Seat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Seat), args.Error(1)
}

func (m *SeatServiceMock) GetByID(ctx context.Context, id int) (*model.Seat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Seat), args.Error(1)
}

func (m *SeatServiceMock) ListByEventID(ctx context.Context, eventID int) ([]*model.Seat, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Seat), args.Error(1)
}

func (m *SeatServiceMock) Update(ctx context.Context, id int, params model.UpdateSeatParams) (*model.Seat, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Seat), args.Error(1)
}

func (m *SeatServiceMock) DeleteByIDs(ctx context.Context, ids []int) ([]*model.Seat, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Seat), args.Error(1)
}
