package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/classic-mines/internal/app"
	"github.com/vancomm/classic-mines/internal/config"
	"github.com/vancomm/classic-mines/internal/logging"
	"github.com/vancomm/classic-mines/internal/mines"
	"github.com/vancomm/classic-mines/internal/session"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const (
		defaultConfigPath = "/run/config.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Read(configPath)
	if err != nil {
		log.Fatalf("unable to load config %s: %s", configPath, err)
	}

	if err := logging.Setup(cfg, log, mines.Log, session.Log); err != nil {
		log.Fatal(err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	if err := app.New(log, cfg).Start(mainCtx); err != nil {
		log.Fatalf("exit reason: %s", err)
	}
	log.Info("bye")
}
