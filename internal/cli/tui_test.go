package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_BoardLoadsOnStartup(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewBoard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.PlainView()
	assert.Contains(t, view, "projboard")
	assert.Contains(t, view, "0 active · 0 finished")
	assert.Contains(t, view, "ACTIVE PROJECTS")
	assert.Contains(t, view, "FINISHED PROJECTS")
	assert.Contains(t, view, "a: add project")
	assert.Contains(t, view, "q: quit")
}

func TestTUI_PadsToTerminalHeight(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, 40, strings.Count(d.View(), "\n")+1)
}

func TestTUI_ShowsExistingProjects(t *testing.T) {
	app := testApp(t)
	_, err := app.Board.Submit("Build API", "Design and implement", "3")
	require.NoError(t, err)

	d := NewTestDriver(t, app)

	view := d.PlainView()
	assert.Contains(t, view, "1 active · 0 finished")
	assert.Contains(t, view, "Build API")
	assert.Contains(t, view, "3 persons assigned")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_AddOpensForm(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('a')

	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	view := d.PlainView()
	assert.Contains(t, view, "Add project")
	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "esc: cancel")
	assert.NotContains(t, view, "q: quit")
}

func TestTUI_FormCapturesQ(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	d.PressKey('q')

	assert.False(t, d.IsQuitting())
	assert.Equal(t, ViewForm, d.ActiveViewID())
}

func TestTUI_AddProjectRoundTrip(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.AddProject("Build API", "Design and implement", "3")

	assert.Equal(t, ViewBoard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	projects := app.Board.Store.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "Build API", projects[0].Title)
	assert.Equal(t, "Design and implement", projects[0].Description)
	assert.Equal(t, 3, projects[0].People)

	assert.Equal(t, 1, d.State().Active)
	assert.Contains(t, d.LastOutput(), "Added Build API")
	assert.Empty(t, d.LastAlert())

	view := d.PlainView()
	assert.Contains(t, view, "1 active · 0 finished")
	assert.Contains(t, view, "▸ Build API  3 persons assigned")
	assert.Contains(t, view, "Design and implement")
}

func TestTUI_TwoProjectsKeepOrder(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.AddProject("First", "First project", "1")
	d.AddProject("Second", "Second project", "2")

	view := d.PlainView()
	assert.Contains(t, view, "2 active · 0 finished")
	assert.Less(t, strings.Index(view, "First"), strings.Index(view, "Second"))
	assert.Len(t, app.Board.Store.Projects(), 2)
}

func TestTUI_InvalidFieldBlocksForm(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.AddProject("Build API", "Design and implement", "9")

	assert.Equal(t, ViewForm, d.ActiveViewID(), "people out of range keeps the form open")
	assert.Empty(t, app.Board.Store.Projects())
}

func TestTUI_ShortDescriptionBlocksForm(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	d.Type("Build API")
	d.PressEnter()
	d.Type("tiny")
	d.PressEnter()

	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Empty(t, app.Board.Store.Projects())
}

func TestTUI_EscCancelsForm(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	d.Type("Half")
	d.PressEsc()

	assert.Equal(t, ViewBoard, d.ActiveViewID())
	assert.Equal(t, "Cancelled.", d.LastOutput())
	assert.Empty(t, app.Board.Store.Projects())

	// The next key clears the status line.
	d.PressKey('j')
	assert.Empty(t, d.LastOutput())
}

func TestTUI_RejectedSubmissionShowsAlert(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Send(wizardCompleteMsg{nextCmd: submitProject(d.State(), &projectFormValues{Title: "Build API"})})

	assert.Equal(t, "Invalid input", d.LastAlert())
	assert.Contains(t, d.LastOutput(), "Error: invalid input")
	assert.Contains(t, d.PlainView(), "alert: Invalid input")
	assert.Empty(t, app.Board.Store.Projects())
}

func TestTUI_ResizeUpdatesState(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(tea.WindowSizeMsg{Width: 60, Height: 12})

	assert.Equal(t, 60, d.State().Width)
	assert.Equal(t, 7, d.State().ContentHeight())
	assert.Equal(t, 12, strings.Count(d.View(), "\n")+1)
}

func TestFieldValidator(t *testing.T) {
	assert.NoError(t, fieldValidator("title")("Build API"))
	assert.EqualError(t, fieldValidator("title")("  "), "is required")
	assert.EqualError(t, fieldValidator("people")("abc"), "must be at least 1, must be at most 5")
	assert.EqualError(t, fieldValidator("bogus")("x"), `unknown field "bogus"`)
}
