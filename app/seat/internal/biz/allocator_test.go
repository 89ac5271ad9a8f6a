package biz

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	seatv1 "github.com/yunmaoQu/train-reservation/api/seat/v1"
)

func newTestTrain(t *testing.T, percentage int, capacities ...int) *Train {
	t.Helper()
	train, err := NewTrain("express_2000", percentage, capacities...)
	require.NoError(t, err)
	return train
}

// assertWithinCaps checks every carriage against the train's cap and returns
// the total number of reserved seats.
func assertWithinCaps(t *testing.T, train *Train) int {
	t.Helper()
	total := 0
	for _, c := range train.Carriages() {
		assert.LessOrEqual(t, c.Occupancy(), c.Cap(train.MaxReservationPercentage), "carriage %d", c.Index+1)
		total += c.Occupancy()
	}
	return total
}

func TestReserveSeats_FillsToCapThenRejects(t *testing.T) {
	train := newTestTrain(t, 70, 10)

	r, err := ReserveSeats(train, ReservationRequest{SeatCount: 7})
	require.NoError(t, err)
	assert.Len(t, r.Seats, 7)
	assert.NotEmpty(t, r.BookingID)
	assert.Equal(t, "express_2000", r.TrainID)
	assert.Equal(t, 7, assertWithinCaps(t, train))

	_, err = ReserveSeats(train, ReservationRequest{SeatCount: 1})
	assert.True(t, seatv1.IsNoEnoughSeat(err), "got %v", err)
	assert.True(t, errors.Is(err, ErrCannotAccommodate))
	assert.Equal(t, 7, assertWithinCaps(t, train))
}

func TestReserveSeats_SplitsAcrossCarriages(t *testing.T) {
	train := newTestTrain(t, 60, 5, 5)

	r, err := ReserveSeats(train, ReservationRequest{SeatCount: 4, BookingID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, []SeatRef{{0, 1}, {0, 2}, {0, 3}, {1, 1}}, r.Seats)
	assert.Equal(t, 4, assertWithinCaps(t, train))

	carriages := train.Carriages()
	assert.Equal(t, 3, carriages[0].Occupancy())
	assert.Equal(t, 1, carriages[1].Occupancy())
}

func TestReserveSeats_PrefersSingleCarriage(t *testing.T) {
	train := newTestTrain(t, 50, 10, 10)

	first, err := ReserveSeats(train, ReservationRequest{SeatCount: 3, BookingID: "first"})
	require.NoError(t, err)
	assert.Equal(t, []SeatRef{{0, 1}, {0, 2}, {0, 3}}, first.Seats)

	// Carriage 1 has room for only 2 more, so the group moves to carriage 2
	// instead of being split.
	second, err := ReserveSeats(train, ReservationRequest{SeatCount: 3, BookingID: "second"})
	require.NoError(t, err)
	assert.Equal(t, []SeatRef{{1, 1}, {1, 2}, {1, 3}}, second.Seats)

	third, err := ReserveSeats(train, ReservationRequest{SeatCount: 2, BookingID: "third"})
	require.NoError(t, err)
	assert.Equal(t, []SeatRef{{0, 4}, {0, 5}}, third.Seats)
	assert.Equal(t, 8, assertWithinCaps(t, train))
}

func TestReserveSeats_SkipsFullCarriagesWhenSplitting(t *testing.T) {
	train := newTestTrain(t, 50, 4, 4, 4)

	_, err := ReserveSeats(train, ReservationRequest{SeatCount: 2, BookingID: "a"})
	require.NoError(t, err)

	r, err := ReserveSeats(train, ReservationRequest{SeatCount: 3, BookingID: "b"})
	require.NoError(t, err)
	assert.Equal(t, []SeatRef{{1, 1}, {1, 2}, {2, 1}}, r.Seats)
	assert.Equal(t, 5, assertWithinCaps(t, train))
}

func TestReserveSeats_InvalidRequest(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		t.Run(fmt.Sprint(count), func(t *testing.T) {
			train := newTestTrain(t, 70, 10)
			before := train.Carriages()

			r, err := ReserveSeats(train, ReservationRequest{SeatCount: count})
			assert.Nil(t, r)
			assert.True(t, seatv1.IsInvalidRequest(err), "got %v", err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Equal(t, before, train.Carriages())
		})
	}
}

func TestReserveSeats_FailureIsRepeatableAndMutatesNothing(t *testing.T) {
	train := newTestTrain(t, 60, 5, 5)
	_, err := ReserveSeats(train, ReservationRequest{SeatCount: 2, BookingID: "b1"})
	require.NoError(t, err)
	before := train.Carriages()

	_, first := ReserveSeats(train, ReservationRequest{SeatCount: 5})
	_, second := ReserveSeats(train, ReservationRequest{SeatCount: 5})
	assert.True(t, seatv1.IsNoEnoughSeat(first))
	assert.Equal(t, first, second)
	assert.Equal(t, before, train.Carriages())
}

func TestReserveSeats_ZeroPercentTrainAcceptsNothing(t *testing.T) {
	train := newTestTrain(t, 0, 10, 10)
	_, err := ReserveSeats(train, ReservationRequest{SeatCount: 1})
	assert.True(t, seatv1.IsNoEnoughSeat(err))
	assert.Equal(t, 0, assertWithinCaps(t, train))
}

func TestReserveSeats_BookingIDs(t *testing.T) {
	train := newTestTrain(t, 100, 10)

	r, err := ReserveSeats(train, ReservationRequest{SeatCount: 2, BookingID: "75bcd15"})
	require.NoError(t, err)
	assert.Equal(t, "75bcd15", r.BookingID)
	for _, s := range train.Carriages()[0].Seats[:2] {
		assert.Equal(t, "75bcd15", s.BookingID)
	}

	_, err = ReserveSeats(train, ReservationRequest{SeatCount: 1, BookingID: "75bcd15"})
	assert.True(t, seatv1.IsInvalidRequest(err), "reusing a booking id must fail, got %v", err)
	assert.Equal(t, 2, assertWithinCaps(t, train))

	found, ok := train.Reservation("75bcd15")
	require.True(t, ok)
	assert.Equal(t, r, found)

	_, ok = train.Reservation("missing")
	assert.False(t, ok)

	generated, err := ReserveSeats(train, ReservationRequest{SeatCount: 1})
	require.NoError(t, err)
	assert.NotEqual(t, generated.BookingID, r.BookingID)
}

func TestReserveSeats_Concurrent(t *testing.T) {
	train := newTestTrain(t, 70, 10, 10, 10, 10)

	var reserved, rejected atomic.Int64
	var g errgroup.Group
	for i := 0; i < 40; i++ {
		g.Go(func() error {
			_, err := ReserveSeats(train, ReservationRequest{SeatCount: 1})
			switch {
			case err == nil:
				reserved.Add(1)
			case seatv1.IsNoEnoughSeat(err):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 28, reserved.Load())
	assert.EqualValues(t, 12, rejected.Load())
	assert.Equal(t, 28, assertWithinCaps(t, train))
}
