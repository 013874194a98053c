package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/projboard/internal/board"
	"github.com/spf13/cobra"
)

// App holds everything the commands and the TUI operate on.
type App struct {
	Board  *board.Board
	Alerts *AlertLog
	Logger *slog.Logger

	// Now defaults to time.Now when nil.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. When nil the bare
	// command prints help instead of starting the TUI.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRootCmd creates the top-level "projboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "projboard",
		Short: "Collect projects through a form and track them in live lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTUICmd(app),
		newAddCmd(app),
		newRenderCmd(app),
	)

	return root
}
