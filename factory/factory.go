package factory

import "context"

// Factory creates a T described by param.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Factory.
// If f is a function with the appropriate signature, Func(f) is a Factory that calls f.
type Func[T any, P any] func(ctx context.Context, param P) (T, error)

// Create calls f(ctx, param).
func (f Func[T, P]) Create(ctx context.Context, param P) (T, error) {
	return f(ctx, param)
}
