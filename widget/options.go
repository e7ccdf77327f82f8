package widget

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lockpattern/connector"
	"github.com/katalvlaran/lockpattern/pattern"
)

// ResultHandler receives the verdict of every evaluated gesture together with
// the traced indices. It runs on the caller's goroutine after the widget lock
// is released, so it may call back into the widget.
type ResultHandler func(outcome pattern.Outcome, traced []int)

// Option customizes a Widget at construction time.
type Option func(*config)

type config struct {
	secret    pattern.Secret
	logger    *slog.Logger
	connector connector.Options
	onResult  ResultHandler
}

func defaultConfig() config {
	return config{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		connector: connector.DefaultOptions(),
	}
}

// WithSecret sets the initial pattern. Without it the secret is empty and
// every gesture is a Mismatch.
func WithSecret(s pattern.Secret) Option {
	return func(c *config) {
		c.secret = s
	}
}

// WithLogger routes debug logs (layout changes, outcomes) to l.
// The secret itself is never logged. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("widget: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithConnectorOptions overrides the arrowhead geometry.
// Panics if o is not Valid.
func WithConnectorOptions(o connector.Options) Option {
	if !o.Valid() {
		panic("widget: WithConnectorOptions with invalid options")
	}
	return func(c *config) {
		c.connector = o
	}
}

// WithResultHandler registers the host callback for Match/Mismatch.
// Panics on nil.
func WithResultHandler(h ResultHandler) Option {
	if h == nil {
		panic("widget: WithResultHandler(nil)")
	}
	return func(c *config) {
		c.onResult = h
	}
}
