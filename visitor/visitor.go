package visitor

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Visitor has one method per Element variant. Which method runs depends on both the
// element's type, through Element.Accept, and the visitor's type.
type Visitor interface {
	VisitConcreteElement1(e *ConcreteElement1) error
	VisitConcreteElement2(e *ConcreteElement2) error
}

// AcceptAll dispatches v to each element in order and stops at the first failure.
func AcceptAll(v Visitor, elements ...Element) error {
	if isNil(v) {
		return ErrNilVisitor
	}
	for i, e := range elements {
		if e == nil {
			return errors.Wrapf(ErrNilElement, "element %d", i)
		}
		if err := e.Accept(v); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
	}
	return nil
}

// isNil reports whether v is nil or a nil pointer behind the interface.
func isNil(v Visitor) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
