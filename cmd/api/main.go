// Command api runs the PacMac Mobile storefront backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pacmac_mobile_backend/internal/connectivity"
	"pacmac_mobile_backend/internal/email"
	"pacmac_mobile_backend/internal/events"
	apphttp "pacmac_mobile_backend/internal/http"
	"pacmac_mobile_backend/internal/http/router"
	"pacmac_mobile_backend/internal/leasing"
	"pacmac_mobile_backend/internal/notification"
	"pacmac_mobile_backend/internal/orders"
	"pacmac_mobile_backend/internal/payments"
	"pacmac_mobile_backend/internal/tradein"
	"pacmac_mobile_backend/platform/config"
	"pacmac_mobile_backend/platform/decision"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/validator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Env)
	log.Info("starting api",
		"env", cfg.Env,
		"version", cfg.Version,
		"addr", cfg.HTTPAddr,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := events.NewInMemoryBus(log)
	val := validator.New()
	src := decision.NewRandom()

	sender, err := email.NewSender(cfg)
	if err != nil {
		return fmt.Errorf("email sender: %w", err)
	}
	if !cfg.EmailEnabled {
		log.Warn("email delivery disabled, notifications will be dropped")
	}

	if cfg.StripeSecretKey == "" {
		log.Warn("stripe credentials missing, payments run against the simulated gateway")
	}
	gateway, err := payments.NewGateway(cfg, log)
	if err != nil {
		return fmt.Errorf("payment gateway: %w", err)
	}

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			tradein.NewModule(src, bus, val, log),
			leasing.NewModule(cfg, src, bus, val, log),
			connectivity.NewModule(src, bus, val, log),
			orders.NewModule(bus, val, log),
			payments.NewModule(gateway, val),
			notification.NewModule(sender, bus, val, log),
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("stopped")
	return nil
}
