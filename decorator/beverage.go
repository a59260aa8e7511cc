package decorator

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Beverage is served by writing its description to w.
type Beverage interface {
	Serve(w io.Writer) error
}

// OriginalCoffee is the undecorated beverage.
type OriginalCoffee struct{}

func (OriginalCoffee) Serve(w io.Writer) error {
	return write(w, "original coffee")
}

// addition serves the wrapped beverage, then its own topping.
type addition struct {
	wrappee Beverage
	topping string
}

func (a addition) Serve(w io.Writer) error {
	if a.wrappee == nil {
		return ErrNilBeverage
	}
	if err := a.wrappee.Serve(w); err != nil {
		return err
	}
	return write(w, " add "+a.topping+"-")
}

// Honey adds honey to a beverage.
func Honey() Decorator[Beverage] {
	return Func[Beverage](func(b Beverage) Beverage {
		return addition{wrappee: b, topping: "honey"}
	})
}

// Milk adds milk to a beverage.
func Milk() Decorator[Beverage] {
	return Func[Beverage](func(b Beverage) Beverage {
		return addition{wrappee: b, topping: "milk"}
	})
}

func write(w io.Writer, s string) error {
	if w == nil {
		return ErrNilWriter
	}
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, "decorator: write")
	}
	return nil
}
