package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/projboard/internal/board"
	"github.com/alexanderramin/projboard/internal/cli/formatter"
	"github.com/alexanderramin/projboard/internal/validation"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// projboardHuhTheme returns a custom huh theme using the Gruvbox palette.
func projboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// projectFormValues receives the raw strings typed into the add form.
type projectFormValues struct {
	Title       string
	Description string
	People      string
}

// fieldValidator bridges a board field to a huh validator. Only the failed
// constraints are shown; the field title already names the field.
func fieldValidator(field string) func(string) error {
	return func(s string) error {
		err := board.CheckField(field, s)
		var fe *validation.FieldError
		if errors.As(err, &fe) {
			return errors.New(strings.Join(fe.Failed, ", "))
		}
		return err
	}
}

// addProjectForm creates the huh form for a new project.
func addProjectForm(vals *projectFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Build API").
				Value(&vals.Title).
				Validate(fieldValidator(board.FieldTitle)),
			huh.NewInput().
				Title("Description").
				Placeholder("at least 5 characters").
				Value(&vals.Description).
				Validate(fieldValidator(board.FieldDescription)),
			huh.NewInput().
				Title("People").
				Placeholder("1-5").
				Value(&vals.People).
				Validate(fieldValidator(board.FieldPeople)),
		),
	).WithTheme(projboardHuhTheme()).WithShowHelp(false)
}

// startAddProject opens the add form; completing it submits through the board.
func startAddProject(state *SharedState) tea.Cmd {
	vals := &projectFormValues{}
	form := addProjectForm(vals)
	if state.Width > 0 {
		form = form.WithWidth(min(state.Width, 80))
	}
	return startWizardCmd(state, "Add project", form, func() tea.Cmd {
		return submitProject(state, vals)
	})
}

// submitProject sends the form values through the board and reports the
// outcome on the status bar.
func submitProject(state *SharedState, vals *projectFormValues) tea.Cmd {
	app := state.App
	sub, err := app.Board.Submit(vals.Title, vals.Description, vals.People)
	if err != nil {
		var cmds []tea.Cmd
		if app.Alerts != nil {
			for _, text := range app.Alerts.Drain() {
				cmds = append(cmds, func() tea.Msg { return alertMsg{text: text} })
			}
		}
		cmds = append(cmds, outputCmd(formatter.Error(errors.New(strings.ReplaceAll(err.Error(), "\n", "; ")))))
		return tea.Batch(cmds...)
	}
	app.logger().Debug("tui_project_submitted", "title", sub.Title, "people", sub.People)
	return outputCmd(formatter.Success("Added " + formatter.Bold(sub.Title)))
}
