package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/projboard/internal/cli/formatter"
	"github.com/spf13/pflag"
)

// Output formats accepted by --format.
const (
	formatText  = "text"
	formatHTML  = "html"
	formatTable = "table"
)

// renderWidth is the line width used when rendering outside the TUI.
const renderWidth = 80

// outputFormat is the --format flag value. Unknown names are rejected
// while flags are parsed.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }
func (f *outputFormat) Type() string   { return "format" }

func (f *outputFormat) Set(s string) error {
	switch s {
	case formatText, formatHTML, formatTable:
		*f = outputFormat(s)
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, html or table)", s)
}

func addFormatFlag(fs *pflag.FlagSet, f *outputFormat) {
	*f = formatText
	fs.Var(f, "format", "output format: text, html or table")
}

// writeBoard prints the live board in the requested format.
func writeBoard(w io.Writer, app *App, format outputFormat) error {
	switch format {
	case formatHTML:
		if err := app.Board.RenderHTML(w); err != nil {
			return fmt.Errorf("rendering document: %w", err)
		}
		_, err := fmt.Fprintln(w)
		return err
	case formatTable:
		_, err := fmt.Fprint(w, formatter.FormatProjectTable(app.Board.Store.Projects(), app.now()))
		return err
	default:
		_, err := fmt.Fprintln(w, formatter.RenderDocument(app.Board.Host(), renderWidth))
		return err
	}
}
