package cli

import (
	"io"
	"sync"

	"github.com/alexanderramin/projboard/internal/board"
)

// AlertLog collects alerts raised by the board so each surface can show
// them its own way: the TUI on its status line, commands on stderr.
type AlertLog struct {
	mu   sync.Mutex
	msgs []string
}

// NewAlertLog returns an empty AlertLog.
func NewAlertLog() *AlertLog {
	return &AlertLog{}
}

// Alert implements board.Notifier.
func (a *AlertLog) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msgs = append(a.msgs, msg)
}

// Drain returns the pending alerts in arrival order and forgets them.
func (a *AlertLog) Drain() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := a.msgs
	a.msgs = nil
	return msgs
}

// flushAlerts writes pending alerts to w, one per line.
func flushAlerts(w io.Writer, a *AlertLog) {
	if a == nil {
		return
	}
	n := board.WriterNotifier{W: w}
	for _, msg := range a.Drain() {
		n.Alert(msg)
	}
}
