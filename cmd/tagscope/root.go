package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tagscope/internal/catalog"
	"tagscope/internal/config"
	"tagscope/internal/domain"
	"tagscope/internal/eventbus"
	"tagscope/internal/loader"
	"tagscope/internal/logging"
	"tagscope/internal/ui"
)

// app carries the state shared by every subcommand
type app struct {
	configPath string
	logFile    string
	debug      bool

	configSvc config.ConfigService
	cfg       *config.Config
	logger    *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tagscope [source]",
		Short: "Browse a project catalog by search text and tags",
		Long: `tagscope loads a JSON catalog of projects and lets you narrow it down
with a free-text search and a set of selected tags.

The source is an http(s) URL, a file:// URL or a local path. Without an
argument the source from the config file is used.

Examples:
  # Browse the configured catalog
  tagscope

  # Browse a local file
  tagscope ./data.json`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBrowse(cmd, a.source(args))
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file (overrides log_file in config)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newTagsCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup loads the config and opens the logger
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		a.configSvc = config.NewConfigServiceAt(a.configPath)
	} else {
		a.configSvc = config.NewConfigService()
	}

	cfg, err := a.configSvc.Load()
	if err != nil {
		cmd.PrintErrf("Error loading config: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	logFile := cfg.LogFile
	if a.logFile != "" {
		logFile = a.logFile
	}
	logger, err := logging.New(logFile, a.debug)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.logger = logger
	return nil
}

// source resolves the catalog source from args or config
func (a *app) source(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return a.cfg.Source
}

func (a *app) newEngine() *catalog.Engine {
	return catalog.New(
		catalog.WithTopTags(a.cfg.TopTags),
		catalog.WithLogger(a.logger.Named("catalog")),
	)
}

// runBrowse runs the interactive browser
func (a *app) runBrowse(cmd *cobra.Command, source string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(a.logger)
	defer bus.Close()

	cfg := *a.cfg
	cfg.Source = source

	engine := a.newEngine()
	uiModel := ui.NewModel(engine, bus, &cfg, a.logger)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward load events to the UI loop, which owns the engine
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventDatasetLoadStarted, forward)
	bus.Subscribe(eventbus.EventDatasetLoaded, forward)
	bus.Subscribe(eventbus.EventDatasetLoadFailed, forward)

	ld := loader.New(source, loader.WithBus(bus), loader.WithLogger(a.logger))
	if err := ld.Start(ctx); err != nil {
		return err
	}

	a.logger.Info("starting browser", zap.String("source", source))
	_, err := p.Run()

	cancel()
	ld.Wait()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// fetch loads the catalog for the one-shot commands. A failed load is
// logged and yields an empty catalog, like the browser.
func (a *app) fetch(ctx context.Context, source string) []domain.Project {
	projects, err := loader.New(source, loader.WithLogger(a.logger)).Fetch(ctx)
	if err != nil {
		a.logger.Error("error fetching data", zap.String("source", source), zap.Error(err))
		return []domain.Project{}
	}
	return projects
}
