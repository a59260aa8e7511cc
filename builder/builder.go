package builder

import "context"

// Builder assembles a T step by step and hands it out once complete.
type Builder[T any] interface {
	// Build returns the assembled product, or the first error recorded while assembling it.
	Build(ctx context.Context) (T, error)
}

// PartBuilder builds a Product one part at a time. Each implementation decides how a
// part is made from the raw input the Director passes.
type PartBuilder interface {
	Builder[Product]
	BuildPartA(p string)
	BuildPartB(p string)
	BuildPartC(p string)
}

// Product is assembled from three parts.
type Product struct {
	PartA string
	PartB string
	PartC string
}

// String joins the parts as "a, b, c".
func (p Product) String() string {
	return p.PartA + ", " + p.PartB + ", " + p.PartC
}

var _ PartBuilder = (*ConcreteBuilder)(nil)

// ConcreteBuilder prefixes every part with its variant letter.
type ConcreteBuilder struct {
	variant string
	product Product
}

// NewConcreteBuilderA returns a builder producing "A"-prefixed parts.
func NewConcreteBuilderA() *ConcreteBuilder {
	return &ConcreteBuilder{variant: "A"}
}

// NewConcreteBuilderB returns a builder producing "B"-prefixed parts.
func NewConcreteBuilderB() *ConcreteBuilder {
	return &ConcreteBuilder{variant: "B"}
}

func (b *ConcreteBuilder) BuildPartA(p string) {
	b.product.PartA = b.variant + p
}

func (b *ConcreteBuilder) BuildPartB(p string) {
	b.product.PartB = b.variant + p
}

func (b *ConcreteBuilder) BuildPartC(p string) {
	b.product.PartC = b.variant + p
}

// Build returns a copy of the product as built so far.
func (b *ConcreteBuilder) Build(ctx context.Context) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	return b.product, nil
}
