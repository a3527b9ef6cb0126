package domtest

import (
	"log/slog"

	"github.com/huuff/dom-test-lib/dom"
)

const (
	DefaultContainerTag = "section"
)

type (
	Option func(*options)

	options struct {
		autoSettle   bool
		containerTag string
		logger       *slog.Logger
		tickers      []dom.Ticker
	}
)

func newOptions(opts []Option) options {
	o := options{
		containerTag: DefaultContainerTag,
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithAutoSettle makes every interaction wait one settle tick after its
// events are dispatched.
func WithAutoSettle() Option {
	return func(o *options) {
		o.autoSettle = true
	}
}

// WithContainerTag sets the tag of the element views are mounted into
func WithContainerTag(tag string) Option {
	return func(o *options) {
		o.containerTag = tag
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTicker adds a settle primitive, for roots started with WithRoot
// whose host or framework isn't known to the chain.
func WithTicker(tk dom.Ticker) Option {
	return func(o *options) {
		o.tickers = append(o.tickers, tk)
	}
}
