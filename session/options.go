package session

import (
	"github.com/jsphweid/harmonywheel/modifier"
	"go.uber.org/zap"
)

type options struct {
	audio    Audio
	output   Output
	logger   *zap.Logger
	onChange func(modifier.Change)
	velocity uint8
}

// Option configures a Session.
type Option func(*options)

func WithAudio(a Audio) Option {
	return func(o *options) {
		o.audio = a
	}
}

func WithOutput(out Output) Option {
	return func(o *options) {
		o.output = out
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithModeListener is told when seventh or ninth mode turns on or off. It
// runs after the session lock is released and may read the session.
func WithModeListener(fn func(modifier.Change)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithVelocity sets the velocity used for programmatic chords.
func WithVelocity(v uint8) Option {
	return func(o *options) {
		o.velocity = v
	}
}
