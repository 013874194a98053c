package cli

import (
	"testing"

	"github.com/alexanderramin/projboard/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, shared state, status line) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets the terminal size and
// drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// AddProject opens the form with 'a' and fills in the three fields.
func (d *TestDriver) AddProject(title, description, people string) {
	d.T.Helper()
	d.PressKey('a')
	d.Type(title)
	d.PressEnter()
	d.Type(description)
	d.PressEnter()
	d.Type(people)
	d.PressEnter()
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient status line output.
func (d *TestDriver) LastOutput() string {
	return stripANSI(d.appModel().lastOutput)
}

// LastAlert returns the alert currently shown on the status bar.
func (d *TestDriver) LastAlert() string {
	return d.appModel().lastAlert
}

// PlainView returns the rendered view without ANSI styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}
