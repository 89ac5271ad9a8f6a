package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"

	seatv1 "github.com/yunmaoQu/train-reservation/api/seat/v1"
)

// TicketOffice routes reservation requests to trains by id. The set of trains
// is fixed at construction.
type TicketOffice struct {
	log    *log.Helper
	trains map[string]*Train
}

func NewTicketOffice(trains []*Train, logger log.Logger) (*TicketOffice, error) {
	o := &TicketOffice{
		log:    log.NewHelper(log.With(logger, "module", "biz/office")),
		trains: make(map[string]*Train, len(trains)),
	}
	for _, t := range trains {
		if _, ok := o.trains[t.ID]; ok {
			return nil, fmt.Errorf("duplicate train id %q", t.ID)
		}
		o.trains[t.ID] = t
	}
	return o, nil
}

func (o *TicketOffice) train(id string) (*Train, error) {
	t, ok := o.trains[id]
	if !ok {
		return nil, seatv1.ErrorTrainNotFound("no train %q", id)
	}
	return t, nil
}

// MakeReservation reserves seats on the train named by req.TrainID.
func (o *TicketOffice) MakeReservation(ctx context.Context, req ReservationRequest) (*Reservation, error) {
	t, err := o.train(req.TrainID)
	if err != nil {
		return nil, err
	}
	r, err := ReserveSeats(t, req)
	if err != nil {
		o.log.WithContext(ctx).Warnw("msg", "reservation rejected", "train", req.TrainID, "count", req.SeatCount, "err", err)
		return nil, err
	}
	o.log.WithContext(ctx).Infow("msg", "reservation made", "train", r.TrainID, "booking", r.BookingID, "seats", len(r.Seats))
	return r, nil
}

func (o *TicketOffice) UnreservedSeats(ctx context.Context, trainID string) ([]SeatRef, error) {
	t, err := o.train(trainID)
	if err != nil {
		return nil, err
	}
	return t.UnreservedSeats(), nil
}

func (o *TicketOffice) Reservation(ctx context.Context, trainID, bookingID string) (*Reservation, error) {
	t, err := o.train(trainID)
	if err != nil {
		return nil, err
	}
	r, ok := t.Reservation(bookingID)
	if !ok {
		return nil, seatv1.ErrorReservationNotFound("no reservation %q on train %s", bookingID, trainID)
	}
	return r, nil
}
