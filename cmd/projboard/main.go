package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/projboard/internal/board"
	"github.com/alexanderramin/projboard/internal/cli"
	"github.com/alexanderramin/projboard/internal/config"
	"github.com/alexanderramin/projboard/internal/layout"
	"github.com/alexanderramin/projboard/internal/state"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	// The TUI owns the terminal, so its logs only go to a file.
	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = io.Discard
	}
	logw, closeLog, err := cfg.OpenLogWriter(fallback)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := cfg.NewLogger(logw)

	doc, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return err
	}

	store := state.New(state.WithLogger(logger))
	alerts := cli.NewAlertLog()

	b, err := board.Assemble(doc, store, alerts, board.WithLogger(logger))
	if err != nil {
		return err
	}

	app := &cli.App{
		Board:  b,
		Alerts: alerts,
		Logger: logger,
		IsInteractive: func() bool {
			return interactive
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
