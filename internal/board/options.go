package board

import (
	"io"
	"log/slog"
)

// Option configures the board views.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by the board views.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
