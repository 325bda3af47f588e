package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	delivery "pianostudio/internal/delivery/http"
	"pianostudio/internal/delivery/http/controllers"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var noAutomation bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the automation runner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			return serve(ctx, a, !noAutomation)
		},
	}
	cmd.Flags().BoolVar(&noAutomation, "no-automation", false, "do not start the background automation runner")
	return cmd
}

func serve(ctx context.Context, a *app, automation bool) error {
	window := a.cfg.WindowSize
	handler := delivery.NewHandler(delivery.Controllers{
		Reservations:     controllers.NewReservationController(a.logger, a.reservations, window),
		Coupons:          controllers.NewCouponController(a.logger, a.coupons, window),
		Deposits:         controllers.NewDepositController(a.logger, a.deposits, window),
		MessageTemplates: controllers.NewMessageTemplateController(a.logger, a.templates, window),
		Settings:         controllers.NewSettingsController(a.logger, a.roomPasswords, a.settings, window),
	}, a.logger, a.cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	runnerDone := make(chan struct{})
	if automation {
		go func() {
			defer close(runnerDone)
			a.runner.Run(ctx)
		}()
	} else {
		close(runnerDone)
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", "port", a.cfg.Port, "env", a.cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			a.logger.Error("server failed", "err", err)
			return err
		}
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-runnerDone
	return nil
}
