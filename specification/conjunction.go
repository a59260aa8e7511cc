package specification

// conjunction holds when every member holds, checked in order.
type conjunction[T any] []Specification[T]

func (specs conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range specs {
		if !s.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}

// disjunction holds when some member holds, checked in order.
type disjunction[T any] []Specification[T]

func (specs disjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range specs {
		if s.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}
