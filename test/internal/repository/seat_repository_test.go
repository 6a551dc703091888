package repository

import (
	"context"
	"testing"

	"go-seat-booking/internal/model"
	"go-seat-booking/internal/repository"
	apperrors "go-seat-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatRepository_Create(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)

		tx, err := getTestDB().Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		seat := &model.Seat{
			EventID:  eventID,
			SeatCode: "A1",
			Status:   model.SeatStatusAvailable,
		}

		created, err := repo.Create(ctx, tx, seat)

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, eventID, created.EventID)
		assert.Equal(t, "A1", created.SeatCode)
		assert.Equal(t, model.SeatStatusAvailable, created.Status)

		require.NoError(t, tx.Commit(ctx))
		assertRowCount(t, "seats", 1)
	})

	t.Run("DuplicateSeatCodeInEvent", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		createTestSeat(t, eventID, "A1", model.SeatStatusAvailable)

		tx, err := getTestDB().Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		_, err = repo.Create(ctx, tx, &model.Seat{
			EventID:  eventID,
			SeatCode: "A1",
			Status:   model.SeatStatusAvailable,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateSeatCode)
	})

	t.Run("SameCodeInDifferentEvents", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		event1 := createTestEvent(t, "Event One", 10)
		event2 := createTestEvent(t, "Event Two", 10)
		createTestSeat(t, event1, "A1", model.SeatStatusAvailable)

		tx, err := getTestDB().Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		_, err = repo.Create(ctx, tx, &model.Seat{
			EventID:  event2,
			SeatCode: "A1",
			Status:   model.SeatStatusAvailable,
		})

		require.NoError(t, err)
	})
}

func TestSeatRepository_List(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	t.Run("OrderByEventAndCode", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		event1 := createTestEvent(t, "Event One", 10)
		event2 := createTestEvent(t, "Event Two", 10)
		createTestSeat(t, event2, "B1", model.SeatStatusAvailable)
		createTestSeat(t, event1, "A2", model.SeatStatusAvailable)
		createTestSeat(t, event1, "A1", model.SeatStatusAvailable)

		seats, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, seats, 3)
		assert.Equal(t, "A1", seats[0].SeatCode)
		assert.Equal(t, "A2", seats[1].SeatCode)
		assert.Equal(t, "B1", seats[2].SeatCode)
	})
}

func TestSeatRepository_ListByEventID(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	t.Run("OnlySeatsOfEvent", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		event1 := createTestEvent(t, "Event One", 10)
		event2 := createTestEvent(t, "Event Two", 10)
		createTestSeat(t, event1, "A1", model.SeatStatusAvailable)
		createTestSeat(t, event1, "A2", model.SeatStatusBooked)
		createTestSeat(t, event2, "B1", model.SeatStatusAvailable)

		seats, err := repo.ListByEventID(ctx, event1)

		require.NoError(t, err)
		require.Len(t, seats, 2)
		assert.Equal(t, "A1", seats[0].SeatCode)
		assert.Equal(t, "A2", seats[1].SeatCode)
	})

	t.Run("EmptyForUnknownEvent", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		seats, err := repo.ListByEventID(ctx, 99999)

		require.NoError(t, err)
		assert.Empty(t, seats)
	})
}

func TestSeatRepository_FindByID(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		seatID := createTestSeat(t, eventID, "A1", model.SeatStatusAvailable)

		seat, err := repo.FindByID(ctx, seatID)

		require.NoError(t, err)
		assert.Equal(t, seatID, seat.ID)
		assert.Equal(t, "A1", seat.SeatCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.FindByID(ctx, 99999)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSeatNotFound)
	})
}

func TestSeatRepository_CountByEventID(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	eventID := createTestEvent(t, "Counted Event", 10)
	createTestSeat(t, eventID, "A1", model.SeatStatusAvailable)
	createTestSeat(t, eventID, "A2", model.SeatStatusBooked)

	tx, err := getTestDB().Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	count, err := repo.CountByEventID(ctx, tx, eventID)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSeatRepository_Update(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		seatID := createTestSeat(t, eventID, "A1", model.SeatStatusAvailable)

		status := model.SeatStatusBooked
		updated, err := repo.Update(ctx, seatID, model.UpdateSeatParams{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, model.SeatStatusBooked, updated.Status)
		assert.Equal(t, "A1", updated.SeatCode)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		seatID := createTestSeat(t, eventID, "A1", model.SeatStatusAvailable)

		status := model.SeatStatus("TAKEN")
		_, err := repo.Update(ctx, seatID, model.UpdateSeatParams{Status: &status})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		code := "Z9"
		_, err := repo.Update(ctx, 99999, model.UpdateSeatParams{SeatCode: &code})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSeatNotFound)
	})

	t.Run("DuplicateSeatCode", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		createTestSeat(t, eventID, "A1", model.SeatStatusAvailable)
		seatID := createTestSeat(t, eventID, "A2", model.SeatStatusAvailable)

		code := "A1"
		_, err := repo.Update(ctx, seatID, model.UpdateSeatParams{SeatCode: &code})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateSeatCode)
	})
}

func TestSeatRepository_UpdateStatus(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	eventID := createTestEvent(t, "Seated Event", 10)
	seatID := createTestSeat(t, eventID, "A1", model.SeatStatusAvailable)

	tx, err := getTestDB().Begin(ctx)
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, tx, seatID, model.SeatStatusBooked)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	seat, err := repo.FindByID(ctx, seatID)
	require.NoError(t, err)
	assert.Equal(t, model.SeatStatusBooked, seat.Status)
}

func TestSeatRepository_DeleteByIDs(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	t.Run("DeletesMatchingSeats", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		id1 := createTestSeat(t, eventID, "A1", model.SeatStatusAvailable)
		id2 := createTestSeat(t, eventID, "A2", model.SeatStatusAvailable)
		createTestSeat(t, eventID, "A3", model.SeatStatusAvailable)

		deleted, err := repo.DeleteByIDs(ctx, []int{id1, id2})

		require.NoError(t, err)
		assert.Len(t, deleted, 2)
		assertRowCount(t, "seats", 1)
	})

	t.Run("NoneMatched", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.DeleteByIDs(ctx, []int{99998, 99999})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSeatNotFound)
	})

	t.Run("EmptyIDs", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		deleted, err := repo.DeleteByIDs(ctx, []int{})

		require.NoError(t, err)
		assert.Empty(t, deleted)
	})
}

func TestSeatRepository_HasUnbookedSeats(t *testing.T) {
	repo := repository.NewSeatRepository(getTestDB())
	ctx := context.Background()

	t.Run("TrueWhileSeatsRemain", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		createTestSeat(t, eventID, "A1", model.SeatStatusBooked)
		createTestSeat(t, eventID, "A2", model.SeatStatusAvailable)

		hasUnbooked, err := repo.HasUnbookedSeats(ctx, eventID)

		require.NoError(t, err)
		assert.True(t, hasUnbooked)
	})

	t.Run("FalseWhenAllBooked", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Seated Event", 10)
		createTestSeat(t, eventID, "A1", model.SeatStatusBooked)
		createTestSeat(t, eventID, "A2", model.SeatStatusBooked)

		hasUnbooked, err := repo.HasUnbookedSeats(ctx, eventID)

		require.NoError(t, err)
		assert.False(t, hasUnbooked)
	})

	t.Run("FalseForEventWithoutSeats", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Empty Event", 10)

		hasUnbooked, err := repo.HasUnbookedSeats(ctx, eventID)

		require.NoError(t, err)
		assert.False(t, hasUnbooked)
	})
}
