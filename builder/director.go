package builder

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrNilBuilder the Director has no builder to direct.
var ErrNilBuilder = errors.New("builder: builder is nil")

// Director fixes the order in which parts are built; the builder decides what they are.
type Director struct {
	builder PartBuilder
}

func NewDirector(b PartBuilder) *Director {
	return &Director{builder: b}
}

// SetBuilder swaps the builder used by later constructions.
func (d *Director) SetBuilder(b PartBuilder) {
	d.builder = b
}

// Construct builds parts A, B and C from "0", "1" and "2".
func (d *Director) Construct(ctx context.Context) (Product, error) {
	return d.construct(ctx, "0", "1", "2")
}

// ConstructUniform builds all three parts from the same input.
func (d *Director) ConstructUniform(ctx context.Context, part string) (Product, error) {
	return d.construct(ctx, part, part, part)
}

func (d *Director) construct(ctx context.Context, a, b, c string) (Product, error) {
	if d.builder == nil {
		return Product{}, ErrNilBuilder
	}
	d.builder.BuildPartA(a)
	d.builder.BuildPartB(b)
	d.builder.BuildPartC(c)
	return d.builder.Build(ctx)
}
