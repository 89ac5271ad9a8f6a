package v1

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationSeatServiceHold           = "/api.seat.v1.SeatService/Hold"
	OperationSeatServiceListSeats      = "/api.seat.v1.SeatService/ListSeats"
	OperationSeatServiceGetReservation = "/api.seat.v1.SeatService/GetReservation"
)

type SeatServiceHTTPServer interface {
	Hold(context.Context, *HoldRequest) (*HoldReply, error)
	ListSeats(context.Context, *ListSeatsRequest) (*ListSeatsReply, error)
	GetReservation(context.Context, *GetReservationRequest) (*HoldReply, error)
}

func RegisterSeatServiceHTTPServer(s *http.Server, srv SeatServiceHTTPServer) {
	r := s.Route("/")
	r.POST("/v1/trains/{train_id}/reservations", seatServiceHoldHandler(srv))
	r.GET("/v1/trains/{train_id}/seats", seatServiceListSeatsHandler(srv))
	r.GET("/v1/trains/{train_id}/reservations/{reservation_id}", seatServiceGetReservationHandler(srv))
}

func seatServiceHoldHandler(srv SeatServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in HoldRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		// path wins over body
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationSeatServiceHold)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Hold(ctx, req.(*HoldRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*HoldReply))
	}
}

func seatServiceListSeatsHandler(srv SeatServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListSeatsRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationSeatServiceListSeats)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListSeats(ctx, req.(*ListSeatsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListSeatsReply))
	}
}

func seatServiceGetReservationHandler(srv SeatServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetReservationRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationSeatServiceGetReservation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetReservation(ctx, req.(*GetReservationRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*HoldReply))
	}
}
