package specification

// Specification interface.
// A specification answers whether a candidate satisfies a business rule, and can be
// combined with others through And, Or, Not, Conjunction and Disjunction.
type Specification[T any] interface {
	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool
}

// The Func type is an adapter to allow the use of ordinary functions as Specification.
// If f is a function with the appropriate signature, Func(f) is a Specification that calls f.
type Func[T any] func(t T) bool

// IsSatisfiedBy calls f(t).
func (f Func[T]) IsSatisfiedBy(t T) bool {
	return f(t)
}

// New create a Specification from predicate.
func New[T any](predicate func(t T) bool) Specification[T] {
	return Func[T](predicate)
}

// And is satisfied when left and right both are; right is not consulted when left fails.
// composite.Select uses it to narrow a node query, e.g. And(IsComposite(), Named("a")).
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return Conjunction(left, right)
}

// Or is satisfied when left or right is; right is not consulted when left holds.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return Disjunction(left, right)
}

// Not inverts spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return Func[T](func(t T) bool { return !spec.IsSatisfiedBy(t) })
}

// Conjunction create a new specification satisfied when all specs are satisfied.
// An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return conjunction[T](specs)
}

// Disjunction create a new specification satisfied when any of specs is satisfied.
// An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return disjunction[T](specs)
}
