package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}
type pongMsg struct{}

// counter records keys and answers every ping with a pong.
type counter struct {
	keys  string
	pings int
	pongs int
	width int
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case pingMsg:
		c.pings++
		return c, func() tea.Msg { return pongMsg{} }
	case pongMsg:
		c.pongs++
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return c, tea.Quit
		case "b":
			return c, tea.Batch(ping, ping)
		case "s":
			return c, tea.Sequence(ping, ping, ping)
		}
		c.keys += msg.String()
	}
	return c, nil
}

func (c counter) View() string { return c.keys }

func ping() tea.Msg { return pingMsg{} }

func TestDriver_InitAndSize(t *testing.T) {
	d := New(t, counter{}, WithSize(100, 30))
	d.DrainInit()

	c := d.Model.(counter)
	assert.Equal(t, 100, c.width)
	assert.Equal(t, 1, c.pings)
	assert.Equal(t, 1, c.pongs)
	assert.True(t, d.Saw("WindowSizeMsg"))
}

func TestDriver_Type(t *testing.T) {
	d := New(t, counter{})
	d.Type("hi")
	d.PressEnter()
	assert.Equal(t, "hienter", d.View())
}

func TestDriver_BatchAndSequence(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('b')
	assert.Equal(t, 2, d.Model.(counter).pongs)

	d.PressKey('s')
	assert.Equal(t, 5, d.Model.(counter).pongs)
}

func TestDriver_QuitStopsDelivery(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.Type("xy")
	assert.Equal(t, "", d.View())
}
