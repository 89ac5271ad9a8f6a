package server

import (
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	seatv1 "github.com/yunmaoQu/train-reservation/api/seat/v1"
	"github.com/yunmaoQu/train-reservation/app/seat/internal/conf"
	"github.com/yunmaoQu/train-reservation/app/seat/internal/service"
)

// NewHTTPServer creates the HTTP server serving the seat API.
func NewHTTPServer(c conf.HTTP, seat *service.SeatService, logger log.Logger) (*http.Server, error) {
	timeout, err := c.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	opts := []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
		http.Timeout(timeout),
	}
	if c.Network != "" {
		opts = append(opts, http.Network(c.Network))
	}
	if c.Addr != "" {
		opts = append(opts, http.Address(c.Addr))
	}
	srv := http.NewServer(opts...)
	seatv1.RegisterSeatServiceHTTPServer(srv, seat)
	return srv, nil
}
