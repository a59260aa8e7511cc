package decorator

// Decorator wraps a T in another T that delegates to it. Honey and Milk are decorators of
// Beverage that serve the wrapped beverage and then their own topping; the demo registry
// decorates every Demo it runs with logging.
type Decorator[T any] interface {
	Decorate(wrappee T) T
}

// Func adapts a plain wrapping function to Decorator.
type Func[T any] func(wrappee T) T

func (f Func[T]) Decorate(wrappee T) T {
	return f(wrappee)
}

// Chain wraps wrappee in decorators so that decorators[0] ends up outermost: Chain(c, Milk(),
// Honey()) serves c, then honey, then milk.
func Chain[T any](wrappee T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		wrappee = decorators[i].Decorate(wrappee)
	}
	return wrappee
}
