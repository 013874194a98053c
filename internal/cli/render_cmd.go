package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// submissionLine is one JSON line read by the render command. People is
// kept raw so both 3 and "3" are accepted and bad values reach validation.
type submissionLine struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	People      json.RawMessage `json:"people"`
}

func (l submissionLine) peopleText() string {
	raw := strings.TrimSpace(string(l.People))
	if raw == "" || raw == "null" {
		return ""
	}
	if s, err := strconv.Unquote(raw); err == nil {
		return s
	}
	return raw
}

func newRenderCmd(app *App) *cobra.Command {
	var (
		input  string
		format outputFormat
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Submit projects from JSON lines and print the board",
		Long: `Reads one submission per line, e.g.
  {"title":"Build API","description":"Design and implement","people":3}
from --input or stdin. Each line goes through the project form; rejected
lines are reported on stderr and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			r := cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				r = f
			}

			accepted, rejected, err := submitLines(r, cmd.ErrOrStderr(), app)
			if err != nil {
				return err
			}
			app.logger().Info("render_input_processed", "accepted", accepted, "rejected", rejected)

			return writeBoard(cmd.OutOrStdout(), app, format)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON lines file (default stdin)")
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}

// submitLines feeds every non-blank line of r through the board and reports
// rejected lines on errw.
func submitLines(r io.Reader, errw io.Writer, app *App) (accepted, rejected int, err error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var line submissionLine
		if err := json.Unmarshal([]byte(text), &line); err != nil {
			rejected++
			fmt.Fprintf(errw, "line %d: invalid JSON: %v\n", lineNo, err)
			continue
		}
		if _, err := app.Board.Submit(line.Title, line.Description, line.peopleText()); err != nil {
			rejected++
			flushAlerts(errw, app.Alerts)
			fmt.Fprintf(errw, "line %d: %s\n", lineNo, strings.ReplaceAll(err.Error(), "\n", "; "))
			continue
		}
		accepted++
	}
	if err := sc.Err(); err != nil {
		return accepted, rejected, fmt.Errorf("reading input: %w", err)
	}
	return accepted, rejected, nil
}
