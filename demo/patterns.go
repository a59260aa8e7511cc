package demo

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/go-leo/patterns/adapter"
	"github.com/go-leo/patterns/builder"
	"github.com/go-leo/patterns/command"
	"github.com/go-leo/patterns/composite"
	"github.com/go-leo/patterns/decorator"
	"github.com/go-leo/patterns/factory/abstract"
	"github.com/go-leo/patterns/visitor"
)

// Composite renders a tree of three leaves and a nested composite holding a Leaf and a Leaf2.
func Composite(ctx context.Context, w io.Writer) error {
	tree, err := composite.NewTreeBuilder().
		Leaf("").
		Leaf("").
		Leaf2("").
		Begin().
		Leaf("").
		Leaf2("").
		End().
		Build(ctx)
	if err != nil {
		return err
	}
	return tree.Render(w)
}

// Visitor dispatches both concrete visitors to both concrete elements.
func Visitor(_ context.Context, w io.Writer) error {
	v1 := visitor.NewConcreteVisitor1(w)
	v2 := visitor.NewConcreteVisitor2(w)
	e1 := &visitor.ConcreteElement1{}
	e2 := &visitor.ConcreteElement2{}
	if err := visitor.AcceptAll(v1, e1); err != nil {
		return err
	}
	if err := visitor.AcceptAll(v2, e1); err != nil {
		return err
	}
	if err := visitor.AcceptAll(v1, e2); err != nil {
		return err
	}
	return visitor.AcceptAll(v2, e2)
}

// Decorator serves a coffee, then the same coffee with honey, then with honey and milk.
func Decorator(_ context.Context, w io.Writer) error {
	var coffee decorator.Beverage = decorator.OriginalCoffee{}
	if err := serveLine(w, coffee); err != nil {
		return err
	}
	coffee = decorator.Honey().Decorate(coffee)
	if err := serveLine(w, coffee); err != nil {
		return err
	}
	coffee = decorator.Milk().Decorate(coffee)
	return serveLine(w, coffee)
}

// Command queues one command per receiver and has the invoker run them in order.
func Command(ctx context.Context, w io.Writer) error {
	invoker := command.NewInvoker(nil)
	if err := invoker.Add(command.NewConcreteCommand(command.Receiver1{W: w})); err != nil {
		return err
	}
	if err := invoker.Add(command.NewConcreteCommand(command.Receiver2{W: w})); err != nil {
		return err
	}
	return invoker.Execute(ctx)
}

// AbstractFactory makes both products of family B.
func AbstractFactory(ctx context.Context, w io.Writer) error {
	f, err := abstract.Maker().Create(ctx, abstract.FamilyB)
	if err != nil {
		return err
	}
	if err := writeLine(w, f.CreateProduct().Description()); err != nil {
		return err
	}
	return writeLine(w, f.CreateProduct2().Description())
}

// Builder has a director build a product from builder A using "great" for every part.
func Builder(ctx context.Context, w io.Writer) error {
	director := builder.NewDirector(builder.NewConcreteBuilderA())
	product, err := director.ConstructUniform(ctx, "great")
	if err != nil {
		return err
	}
	return writeLine(w, product.String())
}

// Adapter shows a target through the embedding adapter, then through the service adapter.
func Adapter(_ context.Context, w io.Writer) error {
	if err := (adapter.EmbeddingAdapter{}).Show(w); err != nil {
		return err
	}
	return adapter.NewServiceAdapter().Show(w)
}

func writeLine(w io.Writer, line string) error {
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return errors.Wrap(err, "demo: write")
	}
	return nil
}

func serveLine(w io.Writer, b decorator.Beverage) error {
	if err := b.Serve(w); err != nil {
		return err
	}
	return writeLine(w, "")
}
