package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kratos/kratos/v2"
	klog "github.com/go-kratos/kratos/v2/log"
	"go.uber.org/zap"

	"github.com/yunmaoQu/train-reservation/app/seat/internal/biz"
	"github.com/yunmaoQu/train-reservation/app/seat/internal/conf"
	"github.com/yunmaoQu/train-reservation/app/seat/internal/server"
	"github.com/yunmaoQu/train-reservation/app/seat/internal/service"
	"github.com/yunmaoQu/train-reservation/pkg/zaplog"
)

var (
	Name    = "seat"
	Version = "dev"

	flagconf string
	id, _    = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()

	zc := zap.NewProductionConfig()
	zc.DisableCaller = true
	zl, err := zc.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build logger:", err)
		os.Exit(1)
	}
	zlog := zaplog.NewLogger(zl)
	defer zlog.Sync()

	logger := klog.With(zlog,
		"ts", klog.DefaultTimestamp,
		"caller", klog.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)
	helper := klog.NewHelper(logger)

	app, err := newApp(flagconf, logger)
	if err != nil {
		helper.Errorf("init: %v", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		helper.Errorf("run: %v", err)
		os.Exit(1)
	}
}

func newApp(path string, logger klog.Logger) (*kratos.App, error) {
	bc, err := conf.Load(path)
	if err != nil {
		return nil, err
	}
	trains, err := bc.BuildTrains()
	if err != nil {
		return nil, err
	}
	office, err := biz.NewTicketOffice(trains, logger)
	if err != nil {
		return nil, err
	}
	httpSrv, err := server.NewHTTPServer(bc.Server.HTTP, service.NewSeatService(office, logger), logger)
	if err != nil {
		return nil, err
	}

	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Logger(logger),
		kratos.Server(httpSrv),
	), nil
}
