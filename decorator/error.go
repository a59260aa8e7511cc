package decorator

import "github.com/cockroachdb/errors"

var (
	// ErrNilBeverage a decorator has nothing to wrap.
	ErrNilBeverage = errors.New("decorator: beverage is nil")

	// ErrNilWriter a beverage was served to no writer.
	ErrNilWriter = errors.New("decorator: writer is nil")
)
