package cli

import (
	"fmt"

	"github.com/alexanderramin/projboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		title, description, people string
		format                     outputFormat
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit one project and print the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := app.Board.Submit(title, description, people)
			if err != nil {
				flushAlerts(cmd.ErrOrStderr(), app.Alerts)
				return err
			}
			if format == formatText {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Added "+formatter.Bold(sub.Title)))
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return writeBoard(cmd.OutOrStdout(), app, format)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "project title")
	cmd.Flags().StringVar(&description, "description", "", "project description (at least 5 characters)")
	cmd.Flags().StringVar(&people, "people", "", "number of people assigned (1-5)")
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}
