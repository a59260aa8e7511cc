package visitor

import "github.com/cockroachdb/errors"

var (
	// ErrNilVisitor Accept was given no visitor.
	ErrNilVisitor = errors.New("visitor: visitor is nil")

	// ErrNilElement an element to dispatch is nil.
	ErrNilElement = errors.New("visitor: element is nil")

	// ErrNilWriter a concrete visitor has no output sink.
	ErrNilWriter = errors.New("visitor: writer is nil")
)
