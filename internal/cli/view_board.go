package cli

import (
	"github.com/alexanderramin/projboard/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type boardKeyMap struct {
	Add key.Binding
	Up  key.Binding
	Dn  key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Add: key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add project")),
		Up:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Dn:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
	}
}

// boardView shows the live document: one section per project list.
type boardView struct {
	state   *SharedState
	keys    boardKeyMap
	vp      viewport.Model
	content string
}

func newBoardView(state *SharedState) *boardView {
	vp := viewport.New(0, 0)
	vp.KeyMap = boardViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	v := &boardView{
		state: state,
		keys:  newBoardKeyMap(),
		vp:    vp,
	}
	v.resize()
	v.refresh()
	return v
}

func (v *boardView) Init() tea.Cmd { return nil }

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		v.refresh()
		return v, nil

	case refreshViewMsg:
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Add) {
			return v, startAddProject(v.state)
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// refresh re-renders the document into the viewport.
func (v *boardView) refresh() {
	v.content = formatter.RenderDocument(v.state.App.Board.Host(), v.width())
	v.vp.SetContent(v.content)
}

func (v *boardView) resize() {
	v.vp.Width = v.width()
	v.vp.Height = v.state.ContentHeight()
}

func (v *boardView) width() int {
	return max(v.state.Width, 40)
}

func (v *boardView) View() string {
	// Without a known terminal height there is nothing to scroll.
	if v.state.Height == 0 {
		return v.content
	}
	return v.vp.View()
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "" }
func (v *boardView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Add, v.keys.Up}
}

// boardViewportKeyMap returns a restricted keymap for the board viewport.
// Letter keys other than j/k stay free for view shortcuts.
func boardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}
