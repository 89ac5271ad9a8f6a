package biz

import (
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/uuid"

	seatv1 "github.com/yunmaoQu/train-reservation/api/seat/v1"
)

var (
	// ErrInvalidRequest is returned for malformed requests, such as a
	// non-positive seat count.
	ErrInvalidRequest = errors.BadRequest(seatv1.ReasonInvalidRequest, "invalid reservation request")

	// ErrCannotAccommodate is returned when no placement keeps every carriage
	// within its cap.
	ErrCannotAccommodate = errors.Conflict(seatv1.ReasonNoEnoughSeat, "cannot accommodate reservation")

	ErrTrainNotFound       = errors.NotFound(seatv1.ReasonTrainNotFound, "train not found")
	ErrReservationNotFound = errors.NotFound(seatv1.ReasonReservationNotFound, "reservation not found")
)

// ReservationRequest asks for SeatCount seats. BookingID tags the reserved
// seats; a new one is generated when it is empty.
type ReservationRequest struct {
	TrainID   string
	SeatCount int
	BookingID string
}

// A Reservation is the set of seats held under one booking id, in the order
// they were assigned.
type Reservation struct {
	TrainID   string
	BookingID string
	Seats     []SeatRef
}

// ReserveSeats reserves req.SeatCount seats on train.
//
// Carriages are tried in train order and the first one with enough room under
// its cap takes the whole request. If none can, the request is split across
// carriages in train order, each taking as many seats as its cap allows. Free
// seats within a carriage are taken in ascending number. Either every seat is
// reserved or none is.
func ReserveSeats(train *Train, req ReservationRequest) (*Reservation, error) {
	return train.Reserve(req)
}

// Reserve is ReserveSeats as a method.
func (t *Train) Reserve(req ReservationRequest) (*Reservation, error) {
	if req.SeatCount <= 0 {
		return nil, seatv1.ErrorInvalidRequest("seat count must be positive, got %d", req.SeatCount)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	bookingID := req.BookingID
	if bookingID == "" {
		bookingID = uuid.NewString()
	} else if _, exists := t.bookings[bookingID]; exists {
		return nil, seatv1.ErrorInvalidRequest("booking %q already exists on train %s", bookingID, t.ID)
	}

	plan := t.plan(req.SeatCount)
	if plan == nil {
		return nil, seatv1.ErrorNoEnoughSeat("train %s cannot accommodate %d seats", t.ID, req.SeatCount)
	}

	r := &Reservation{TrainID: t.ID, BookingID: bookingID, Seats: make([]SeatRef, 0, req.SeatCount)}
	for _, p := range plan {
		c := t.carriages[p.carriage]
		for _, i := range p.seats {
			c.Seats[i].BookingID = bookingID
			r.Seats = append(r.Seats, c.Seats[i].Ref())
		}
	}
	t.bookings[bookingID] = append([]SeatRef(nil), r.Seats...)
	return r, nil
}

type placement struct {
	carriage int
	seats    []int
}

// plan picks the seats for n without touching any state. It returns nil when
// the train cannot take n seats. t.mu must be held.
func (t *Train) plan(n int) []placement {
	pct := t.MaxReservationPercentage
	for _, c := range t.carriages {
		if c.Allowed(pct) >= n {
			return []placement{{carriage: c.Index, seats: c.freeSeats(n)}}
		}
	}

	total := 0
	for _, c := range t.carriages {
		total += c.Allowed(pct)
	}
	if total < n {
		return nil
	}

	var plan []placement
	remaining := n
	for _, c := range t.carriages {
		if remaining == 0 {
			break
		}
		take := min(c.Allowed(pct), remaining)
		if take == 0 {
			continue
		}
		plan = append(plan, placement{carriage: c.Index, seats: c.freeSeats(take)})
		remaining -= take
	}
	return plan
}
