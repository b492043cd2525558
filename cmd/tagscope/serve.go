package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tagscope/internal/loader"
	"tagscope/internal/logging"
	"tagscope/internal/server"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	data string
	host string
	port int
}

func newServeCmd(a *app) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and its filtered views over HTTP",
		Long: `Serve a catalog file over HTTP. GET /data.json returns the file as
loaded, /api/v1/projects?q=TEXT&tag=TAG filters it and /api/v1/tags ranks
its tags.

Examples:
  # Serve ./data.json on the configured port
  tagscope serve

  # Serve another file on port 9000
  tagscope serve --data catalog.json --port 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("data") {
				opts.data = a.cfg.Server.DataFile
			}
			if !cmd.Flags().Changed("host") {
				opts.host = a.cfg.Server.Host
			}
			if !cmd.Flags().Changed("port") {
				opts.port = a.cfg.Server.Port
			}
			return a.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.data, "data", "data.json", "catalog file or URL to serve")
	cmd.Flags().StringVar(&opts.host, "host", "localhost", "listen host")
	cmd.Flags().IntVar(&opts.port, "port", 8080, "listen port")

	return cmd
}

func (a *app) runServe(cmd *cobra.Command, opts *serveOptions) error {
	// The server has no screen to share, so it logs to the console
	// unless a log file was asked for explicitly.
	logger := a.logger
	if a.logFile == "" {
		console, err := logging.NewConsole(a.debug)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		defer func() { _ = console.Sync() }()
		logger = console
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Unlike the browser, serving nothing is an error
	projects, err := loader.New(opts.data, loader.WithLogger(logger)).Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", opts.data, err)
	}

	srv, err := server.NewServer(projects, logger, &server.Config{Host: opts.host, Port: opts.port})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
