package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nounder/fsroute"
	"github.com/nounder/fsroute/config"
	"github.com/nounder/fsroute/filesystem"
	"github.com/nounder/fsroute/httproute"
	"github.com/nounder/fsroute/modules"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the router from the routes directory and serve it",
	Long: `Build the router from the routes directory and serve it.

Page routes (+page.* files) are served with the file contents as the page
body. Server routes (+server.* files) need handlers registered through the
library API and fail the build when served from this CLI.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 7070, "HTTP server port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	builder := fsroute.NewBuilder(
		filesystem.NewLister(),
		modules.Chain{modules.NewPageFiles()},
	)

	registry := httproute.NewRegistry(&httproute.Config{
		CORS:      cfg.CORS,
		RequestID: cfg.Server.RequestID,
	})

	router, err := builder.Build(ctx, cfg.Routes.Dir, registry)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	for _, e := range builder.Entries() {
		slog.Debug("registered route", "method", e.Method, "pattern", e.Pattern, "source", e.Source)
	}
	slog.Info("router assembled", "routes", len(builder.Entries()), "dir", cfg.Routes.Dir)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		cancel()
	}()

	slog.Info("starting server", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
