package demo

import (
	"context"
	"io"
)

// Demo shows one pattern by writing its output to w.
type Demo interface {
	Run(ctx context.Context, w io.Writer) error
}

// The Func type is an adapter to allow the use of ordinary functions as Demo.
// If f is a function with the appropriate signature, Func(f) is a Demo that calls f.
type Func func(ctx context.Context, w io.Writer) error

// Run calls f(ctx, w).
func (f Func) Run(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}
