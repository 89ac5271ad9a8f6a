package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	seatv1 "github.com/yunmaoQu/train-reservation/api/seat/v1"
	"github.com/yunmaoQu/train-reservation/app/seat/internal/biz"
)

type SeatService struct {
	log    *log.Helper
	office *biz.TicketOffice
}

func NewSeatService(office *biz.TicketOffice, logger log.Logger) *SeatService {
	return &SeatService{
		log:    log.NewHelper(log.With(logger, "module", "service/seat")),
		office: office,
	}
}

func (s *SeatService) Hold(ctx context.Context, in *seatv1.HoldRequest) (*seatv1.HoldReply, error) {
	r, err := s.office.MakeReservation(ctx, biz.ReservationRequest{
		TrainID:   in.TrainId,
		SeatCount: int(in.Count),
		BookingID: in.BookingId,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithContext(ctx).Debugf("hold %s on %s: %d seats", r.BookingID, r.TrainID, len(r.Seats))
	return holdReply(r), nil
}

func (s *SeatService) ListSeats(ctx context.Context, in *seatv1.ListSeatsRequest) (*seatv1.ListSeatsReply, error) {
	seats, err := s.office.UnreservedSeats(ctx, in.TrainId)
	if err != nil {
		return nil, err
	}
	return &seatv1.ListSeatsReply{TrainId: in.TrainId, Seats: assignments(seats)}, nil
}

func (s *SeatService) GetReservation(ctx context.Context, in *seatv1.GetReservationRequest) (*seatv1.HoldReply, error) {
	r, err := s.office.Reservation(ctx, in.TrainId, in.ReservationId)
	if err != nil {
		return nil, err
	}
	return holdReply(r), nil
}

func holdReply(r *biz.Reservation) *seatv1.HoldReply {
	return &seatv1.HoldReply{
		TrainId:       r.TrainID,
		ReservationId: r.BookingID,
		Assignments:   assignments(r.Seats),
	}
}

func assignments(seats []biz.SeatRef) []*seatv1.Assignment {
	out := make([]*seatv1.Assignment, 0, len(seats))
	for _, s := range seats {
		out = append(out, &seatv1.Assignment{CarriageNo: int32(s.CarriageNo()), SeatNo: s.SeatNo()})
	}
	return out
}
