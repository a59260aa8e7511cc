package composite

import "go.uber.org/zap"

type options struct {
	StrictRemove bool
	Logger       *zap.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Option func(o *options)

// StrictRemove makes Remove report ErrChildNotFound instead of ignoring an absent child.
func StrictRemove() Option {
	return func(o *options) {
		o.StrictRemove = true
	}
}

// Logger sets the logger used to trace structural changes.
func Logger(logger *zap.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}
