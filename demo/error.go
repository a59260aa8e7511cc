package demo

import "github.com/cockroachdb/errors"

var (
	// ErrNilDemo Register was given no demo.
	ErrNilDemo = errors.New("demo: demo is nil")

	// ErrRegistered a demo with the same name is already registered.
	ErrRegistered = errors.New("demo: demo registered")

	// ErrUnknownDemo no demo is registered under the requested name.
	ErrUnknownDemo = errors.New("demo: unknown demo")
)
