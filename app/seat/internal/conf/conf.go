package conf

import (
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"

	"github.com/yunmaoQu/train-reservation/app/seat/internal/biz"
)

const defaultTimeout = 3 * time.Second

type Bootstrap struct {
	Server Server  `json:"server"`
	Trains []Train `json:"trains"`
}

type Server struct {
	HTTP HTTP `json:"http"`
}

type HTTP struct {
	Network string `json:"network"`
	Addr    string `json:"addr"`
	// Timeout is a time.ParseDuration string such as "3s".
	Timeout string `json:"timeout"`
}

// TimeoutDuration returns the parsed timeout, or 3s when none is set.
func (h HTTP) TimeoutDuration() (time.Duration, error) {
	if h.Timeout == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(h.Timeout)
	if err != nil {
		return 0, fmt.Errorf("server.http.timeout: %w", err)
	}
	return d, nil
}

// Train describes one train of the fleet. Carriages lists seat capacities in
// train order.
type Train struct {
	ID string `json:"id"`
	// MaxReservationPercentage defaults to biz.DefaultMaxReservationPercentage when absent.
	MaxReservationPercentage *int  `json:"max_reservation_percentage"`
	Carriages                []int `json:"carriages"`
}

// Load reads the bootstrap configuration from a file or directory.
func Load(path string) (*Bootstrap, error) {
	c := config.New(
		config.WithSource(
			file.NewSource(path),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, fmt.Errorf("scan config %s: %w", path, err)
	}
	return &bc, nil
}

// BuildTrains constructs the configured trains.
func (b *Bootstrap) BuildTrains() ([]*biz.Train, error) {
	trains := make([]*biz.Train, 0, len(b.Trains))
	for _, t := range b.Trains {
		pct := biz.DefaultMaxReservationPercentage
		if t.MaxReservationPercentage != nil {
			pct = *t.MaxReservationPercentage
		}
		train, err := biz.NewTrain(t.ID, pct, t.Carriages...)
		if err != nil {
			return nil, fmt.Errorf("build train %q: %w", t.ID, err)
		}
		trains = append(trains, train)
	}
	return trains, nil
}
