package session

import (
	"log/slog"

	"github.com/katalvlaran/pivotlab/tableau"
)

// Option configures a Session.
type Option func(*Options)

// Options stores the effective session configuration.
type Options struct {
	historyLimit int
	logger       *slog.Logger
}

// WithHistoryLimit bounds the undo history; n ≤ 0 keeps every snapshot.
func WithHistoryLimit(n int) Option { return func(o *Options) { o.historyLimit = n } }

// WithLogger routes session debug logs. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.logger = l } }

func gatherOptions(opts ...Option) Options {
	o := Options{historyLimit: tableau.DefaultHistoryLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}
