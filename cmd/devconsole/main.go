// devconsole - An in-process developer console for a running program.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fdick/Console/internal/cli"
	"github.com/fdick/Console/internal/commands"
	"github.com/fdick/Console/internal/config"
	"github.com/fdick/Console/internal/console"
	"github.com/fdick/Console/internal/demo"
	"github.com/fdick/Console/internal/logging"
	"github.com/fdick/Console/internal/ui"
	"github.com/fdick/Console/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	args, err := cli.ParseArgs(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.UsageText)
		return err
	}
	if args.Help {
		fmt.Println(cli.UsageText)
		return nil
	}
	if args.Version {
		fmt.Printf("devconsole %s (%s)\n", Version, GitCommit)
		return nil
	}
	if args.WriteConfig {
		path, err := config.WriteDefault(args.ConfigPath)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	cfg, cfgPath, err := loadConfig(args.ConfigPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg)
	if err != nil {
		// Not fatal: the console works without a log file.
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		logger, closer = logging.Discard(), io.NopCloser(nil)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode := cli.SelectMode(args.Line, cli.IsTTY(), cli.IsStdoutTTY())
	logger.Info("starting devconsole", "version", Version, "mode", mode.String(), "config", cfgPath)

	theme := styles.NewTheme(cfg.UI)
	world := demo.NewWorld()

	switch mode {
	case cli.ModeTUI:
		return runTUI(ctx, cfg, cfgPath, theme, world, logger)
	default:
		return runLine(ctx, mode, cfg, theme, world, logger)
	}
}

// loadConfig reads the --config file if given, else the default location.
// It returns the path worth watching, or "" when no file backs the config.
func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := config.LoadFromPath(path)
		return cfg, path, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	defaultPath, err := config.ConfigPath()
	if err != nil {
		return cfg, "", nil
	}
	if _, statErr := os.Stat(defaultPath); statErr != nil {
		return cfg, "", nil
	}
	return cfg, defaultPath, nil
}

func sessionOptions(cfg *config.Config, world *demo.World, t commands.Transcript, logger *slog.Logger) console.Options {
	return console.Options{
		Commands:        demo.Commands(),
		Context:         world.Context(t),
		HistoryCapacity: cfg.Console.HistoryCapacity,
		MaxPredictions:  cfg.Console.MaxPredictions,
		Logger:          logger,
	}
}

// =============================================================================
// FRONT ENDS
// =============================================================================

func runTUI(ctx context.Context, cfg *config.Config, cfgPath string, theme *styles.Theme, world *demo.World, logger *slog.Logger) error {
	screen := ui.NewScreen(cfg.Console.TranscriptCapacity)
	session, err := console.New(screen, sessionOptions(cfg, world, screen, logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		ui.New(ui.Options{
			Session: session,
			Screen:  screen,
			Theme:   theme,
			Config:  cfg,
			Done:    world.Done,
		}),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	// Config edits reach the model as messages so the session is only
	// touched from the Bubble Tea loop.
	if cfgPath != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := config.Watch(watchCtx, cfgPath,
				func(c *config.Config) {
					logger.Info("config reloaded", "path", cfgPath)
					p.Send(ui.ConfigReloadedMsg{Config: c})
				},
				func(err error) {
					logger.Warn("config reload failed", "path", cfgPath, "error", err)
				})
			if err != nil {
				logger.Warn("config watch stopped", "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}

func runLine(ctx context.Context, mode cli.Mode, cfg *config.Config, theme *styles.Theme, world *demo.World, logger *slog.Logger) error {
	printer := cli.NewPrinter(os.Stdout, theme, cli.IsStdoutTTY())
	session, err := console.New(printer, sessionOptions(cfg, world, printer, logger))
	if err != nil {
		return err
	}

	if mode == cli.ModeScript {
		n, err := cli.RunScript(ctx, os.Stdin, session, world.Done)
		logger.Info("script finished", "lines", n)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	repl := cli.NewLineREPL(session, cli.LineOptions{Done: world.Done})
	defer repl.Close()
	return repl.Run(ctx)
}
