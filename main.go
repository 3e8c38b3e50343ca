package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/lager"
	"github.com/makerlabs/print-billing/eventserver"
	"github.com/makerlabs/print-billing/eventserver/auth"
	"github.com/makerlabs/print-billing/pricing"
	"github.com/makerlabs/print-billing/printcloud"
	"github.com/makerlabs/print-billing/reconciler"
	"github.com/makerlabs/print-billing/tracker"
	"github.com/pkg/errors"
)

var (
	logger = getDefaultLogger()
)

func Main() error {
	cfg, err := NewConfigFromEnv()
	if err != nil {
		return err
	}
	cfg.Logger = logger
	cfg.Tracker.Logger = logger.Session("tracker")
	cfg.PrintCloud.Logger = logger.Session("printcloud")

	ctx, shutdown := context.WithCancel(context.Background())
	defer shutdown()
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Reset(syscall.SIGINT, syscall.SIGTERM)
		<-signalChan
		shutdown()
	}()

	trackerClient, err := tracker.New(cfg.Tracker)
	if err != nil {
		return errors.Wrap(err, "failed to initialise tracker client")
	}

	printCloudClient, err := printcloud.New(ctx, cfg.PrintCloud)
	if err != nil {
		return errors.Wrap(err, "failed to connect to the print cloud")
	}

	engine, err := pricing.New(cfg.Pricing)
	if err != nil {
		return errors.Wrap(err, "failed to initialise pricing engine")
	}

	rec, err := reconciler.New(reconciler.Config{
		Store:   trackerClient,
		Pricing: trackerClient,
		Fetcher: printCloudClient,
		Poster:  trackerClient,
		Engine:  engine,
		Logger:  logger.Session("reconciler"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialise reconciler")
	}

	server := eventserver.New(eventserver.Config{
		Authenticator: &auth.SharedSecretAuthenticator{Secret: cfg.WebhookSecret},
		Reconciler:    rec,
		Logger:        logger.Session("server"),
	})

	logger.Info("starting", lager.Data{
		"addr": cfg.ListenAddr,
	})
	return eventserver.ListenAndServe(ctx, logger, server, cfg.ListenAddr)
}

func main() {
	if err := Main(); err != nil {
		logger.Error("main", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
