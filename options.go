package sfmgo

import (
	"time"

	"github.com/hupe1980/sfmgo/command"
	"golang.org/x/time/rate"
)

// DefaultMarkers are the textual fragments VisualSFM writes to the
// socket when a command has finished.
var DefaultMarkers = []string{"*command processed*", "done", "finished"}

type options struct {
	logger       *Logger
	registry     *command.Registry
	dialAttempts int
	dialDelay    time.Duration
	waitTimeout  time.Duration
	readChunk    int
	tailSize     int
	pollRate     rate.Limit
	markers      []string
}

func defaultOptions() options {
	return options{
		logger:       NoopLogger(),
		registry:     command.Default,
		dialAttempts: 10,
		dialDelay:    100 * time.Millisecond,
		waitTimeout:  60 * time.Second,
		readChunk:    256,
		tailSize:     1024,
		pollRate:     rate.Limit(20),
		markers:      DefaultMarkers,
	}
}

// Option configures a Client at Dial time.
type Option func(*options)

// WithLogger injects the logger used for command and wait tracing.
// Pass nil to keep logging disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRegistry overrides the command registry used by Send. Useful for
// driving a tool build with a diverging menu layout.
func WithRegistry(r *command.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithDialAttempts sets how many times Dial retries the connect before
// giving up. The listener needs a moment to come up after the VisualSFM
// process is spawned.
func WithDialAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.dialAttempts = n
		}
	}
}

// WithDialDelay sets the fixed pause between connect attempts.
func WithDialDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.dialDelay = d
		}
	}
}

// WithWaitTimeout sets the default completion-wait timeout used when a
// SendWait call passes a timeout <= 0.
func WithWaitTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.waitTimeout = d
		}
	}
}

// WithReadChunkSize sets the per-poll read size of the completion loop.
func WithReadChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.readChunk = n
		}
	}
}

// WithPollRate sets the pacing of the completion poll loop in attempts
// per second.
func WithPollRate(r rate.Limit) Option {
	return func(o *options) {
		if r > 0 {
			o.pollRate = r
		}
	}
}

// WithCompletionMarkers replaces the marker set scanned for during a
// completion wait.
func WithCompletionMarkers(markers []string) Option {
	return func(o *options) {
		if len(markers) > 0 {
			o.markers = markers
		}
	}
}
