package visitor

// Element accepts a Visitor and calls back the Visit method matching its own type.
//
// The set of elements is closed. Adding an element means adding a method to Visitor,
// which every existing visitor must then implement before the package compiles again.
type Element interface {
	Accept(v Visitor) error

	element()
}

var (
	_ Element = (*ConcreteElement1)(nil)
	_ Element = (*ConcreteElement2)(nil)
)

// ConcreteElement1 is the first element variant.
type ConcreteElement1 struct{}

// Accept visitor.
func (e *ConcreteElement1) Accept(v Visitor) error {
	if e == nil {
		return ErrNilElement
	}
	if isNil(v) {
		return ErrNilVisitor
	}
	return v.VisitConcreteElement1(e)
}

func (*ConcreteElement1) element() {}

// ConcreteElement2 is the second element variant.
type ConcreteElement2 struct{}

// Accept visitor.
func (e *ConcreteElement2) Accept(v Visitor) error {
	if e == nil {
		return ErrNilElement
	}
	if isNil(v) {
		return ErrNilVisitor
	}
	return v.VisitConcreteElement2(e)
}

func (*ConcreteElement2) element() {}
