package board

import (
	"fmt"
	"io"
)

// Notifier tells the user that a submission was rejected.
type Notifier interface {
	Alert(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Alert(msg string) { f(msg) }

// WriterNotifier prints alerts as lines on W.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Alert(msg string) {
	fmt.Fprintf(n.W, "alert: %s\n", msg)
}

type discardNotifier struct{}

func (discardNotifier) Alert(string) {}
