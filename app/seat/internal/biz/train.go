package biz

import (
	"fmt"
	"strconv"
	"sync"

	seatv1 "github.com/yunmaoQu/train-reservation/api/seat/v1"
)

// DefaultMaxReservationPercentage is used when a train is configured without
// an explicit percentage.
const DefaultMaxReservationPercentage = 70

// A Seat belongs to exactly one carriage. Carriage is the index of that
// carriage in the train, not an owning reference.
type Seat struct {
	Carriage  int
	Number    int
	BookingID string
}

// Reserved reports whether the seat carries a booking id.
func (s Seat) Reserved() bool {
	return s.BookingID != ""
}

func (s Seat) Ref() SeatRef {
	return SeatRef{Carriage: s.Carriage, Number: s.Number}
}

// SeatRef identifies a seat within a train.
type SeatRef struct {
	Carriage int
	Number   int
}

// CarriageNo is the 1-based carriage number shown to passengers.
func (r SeatRef) CarriageNo() int {
	return r.Carriage + 1
}

func (r SeatRef) SeatNo() string {
	return strconv.Itoa(r.Number)
}

// A Carriage owns a fixed number of seats numbered from 1.
type Carriage struct {
	Index    int
	Capacity int
	Seats    []Seat
}

func newCarriage(index, capacity int) *Carriage {
	c := &Carriage{Index: index, Capacity: capacity, Seats: make([]Seat, capacity)}
	for i := range c.Seats {
		c.Seats[i] = Seat{Carriage: index, Number: i + 1}
	}
	return c
}

// Occupancy is the number of reserved seats.
func (c *Carriage) Occupancy() int {
	n := 0
	for _, s := range c.Seats {
		if s.Reserved() {
			n++
		}
	}
	return n
}

// Cap is the highest occupancy allowed under percentage, rounded down.
func (c *Carriage) Cap(percentage int) int {
	return c.Capacity * percentage / 100
}

// Allowed is how many more seats may be reserved before the carriage reaches
// its cap. It is never negative.
func (c *Carriage) Allowed(percentage int) int {
	return max(0, c.Cap(percentage)-c.Occupancy())
}

// freeSeats returns up to n unreserved seat positions in ascending order.
func (c *Carriage) freeSeats(n int) []int {
	var free []int
	for i, s := range c.Seats {
		if len(free) == n {
			break
		}
		if !s.Reserved() {
			free = append(free, i)
		}
	}
	return free
}

// A Train is an ordered, fixed list of carriages. Seat state is guarded by mu.
type Train struct {
	ID                       string
	MaxReservationPercentage int

	mu        sync.Mutex
	carriages []*Carriage
	bookings  map[string][]SeatRef
}

// NewTrain builds a train whose carriages have the given capacities, in order.
func NewTrain(id string, percentage int, capacities ...int) (*Train, error) {
	if percentage < 0 || percentage > 100 {
		return nil, seatv1.ErrorInvalidRequest("train %q: maximum reservation percentage %d out of range 0-100", id, percentage)
	}
	if len(capacities) == 0 {
		return nil, seatv1.ErrorInvalidRequest("train %q: no carriages", id)
	}
	t := &Train{
		ID:                       id,
		MaxReservationPercentage: percentage,
		carriages:                make([]*Carriage, len(capacities)),
		bookings:                 make(map[string][]SeatRef),
	}
	for i, capacity := range capacities {
		if capacity <= 0 {
			return nil, seatv1.ErrorInvalidRequest("train %q: carriage %d has capacity %d", id, i+1, capacity)
		}
		t.carriages[i] = newCarriage(i, capacity)
	}
	return t, nil
}

// Carriages returns a snapshot of the train's carriages.
func (t *Train) Carriages() []Carriage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Carriage, len(t.carriages))
	for i, c := range t.carriages {
		out[i] = Carriage{Index: c.Index, Capacity: c.Capacity, Seats: append([]Seat(nil), c.Seats...)}
	}
	return out
}

// UnreservedSeats lists the free seats in train order.
func (t *Train) UnreservedSeats() []SeatRef {
	t.mu.Lock()
	defer t.mu.Unlock()

	var refs []SeatRef
	for _, c := range t.carriages {
		for _, s := range c.Seats {
			if !s.Reserved() {
				refs = append(refs, s.Ref())
			}
		}
	}
	return refs
}

// Reservation looks up the seats held under bookingID.
func (t *Train) Reservation(bookingID string) (*Reservation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seats, ok := t.bookings[bookingID]
	if !ok {
		return nil, false
	}
	return &Reservation{TrainID: t.ID, BookingID: bookingID, Seats: append([]SeatRef(nil), seats...)}, true
}

func (t *Train) String() string {
	return fmt.Sprintf("train %s (%d carriages, max %d%%)", t.ID, len(t.carriages), t.MaxReservationPercentage)
}
