package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/weather-flight/internal/api/http"
	"github.com/i474232898/weather-flight/internal/log"
	"github.com/i474232898/weather-flight/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the background jobs",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := build()
	if err != nil {
		return err
	}

	// Scheduler that refreshes agenda weather and prunes ended trips.
	sched := scheduler.New(c.trips, c.cfg.AgendaRefreshInterval, c.cfg.PruneInterval, c.cfg.StoreMaxAge)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	app := httpapi.NewApp(appName, true)
	httpapi.RegisterRoutes(app, httpapi.Services{
		Catalog:  c.catalog,
		Resolver: c.resolver,
		Trips:    c.trips,
		Locator:  c.locator,
	})

	go func() {
		log.Infof("listening on :%s", c.cfg.Port)
		if err := app.Listen(":" + c.cfg.Port); err != nil {
			log.Errorf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
	return nil
}
