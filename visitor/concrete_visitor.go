package visitor

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

var (
	_ Visitor = ConcreteVisitor1{}
	_ Visitor = ConcreteVisitor2{}
)

// ConcreteVisitor1 reports every element it visits to W.
type ConcreteVisitor1 struct {
	W io.Writer
}

func NewConcreteVisitor1(w io.Writer) ConcreteVisitor1 {
	return ConcreteVisitor1{W: w}
}

func (v ConcreteVisitor1) VisitConcreteElement1(*ConcreteElement1) error {
	return report(v.W, "ConcreteVisitor1 visit concrete element1")
}

func (v ConcreteVisitor1) VisitConcreteElement2(*ConcreteElement2) error {
	return report(v.W, "ConcreteVisitor1 visit concrete element2")
}

// ConcreteVisitor2 reports every element it visits to W.
type ConcreteVisitor2 struct {
	W io.Writer
}

func NewConcreteVisitor2(w io.Writer) ConcreteVisitor2 {
	return ConcreteVisitor2{W: w}
}

func (v ConcreteVisitor2) VisitConcreteElement1(*ConcreteElement1) error {
	return report(v.W, "ConcreteVisitor2 visit concrete element1")
}

func (v ConcreteVisitor2) VisitConcreteElement2(*ConcreteElement2) error {
	return report(v.W, "ConcreteVisitor2 visit concrete element2")
}

func report(w io.Writer, msg string) error {
	if w == nil {
		return ErrNilWriter
	}
	if _, err := fmt.Fprintln(w, msg); err != nil {
		return errors.Wrap(err, "visitor: write")
	}
	return nil
}
