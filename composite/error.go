package composite

import "github.com/cockroachdb/errors"

var (
	// ErrNilComponent a nil Component, or a typed nil pointer, was passed where a node is required.
	ErrNilComponent = errors.New("composite: component is nil")

	// ErrChildNotFound Remove was asked to drop a child that is not present, in strict mode.
	ErrChildNotFound = errors.New("composite: child not found")

	// ErrNilWriter Render was given no output sink.
	ErrNilWriter = errors.New("composite: writer is nil")

	// ErrNilVisitor Accept was given no visitor.
	ErrNilVisitor = errors.New("composite: visitor is nil")

	// ErrNilSpecification Select was given no specification.
	ErrNilSpecification = errors.New("composite: specification is nil")

	// ErrUnbalanced TreeBuilder saw an End without a matching Begin, or a Begin never closed.
	ErrUnbalanced = errors.New("composite: unbalanced begin/end")

	// ErrBuilderSpent a TreeBuilder was changed after Build handed out its tree.
	ErrBuilderSpent = errors.New("composite: builder already built")

	// SkipChildren is returned by a WalkFunc to skip the children of the composite just visited.
	// Returned for a leaf it has no effect. It is never returned as an error by Walk.
	SkipChildren = errors.New("composite: skip children")
)
