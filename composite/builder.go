package composite

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-leo/patterns/builder"
)

var _ builder.Builder[*Composite] = (*TreeBuilder)(nil)

// TreeBuilder assembles a tree top-down. Begin opens a nested composite under the current
// one and End closes it; leaves are added to whichever composite is open.
//
//	root, err := composite.NewTreeBuilder().
//		Leaf("a").
//		Begin().Leaf2("b").End().
//		Build(ctx)
//
// The first error is kept and returned by Build; later steps are ignored.
// A builder hands out one tree: once Build succeeds, any further step fails with
// ErrBuilderSpent, so the returned tree is never changed behind the caller's back.
type TreeBuilder struct {
	opts  []Option
	stack []*Composite
	err   error
	built bool
}

// NewTreeBuilder returns a builder whose root and nested composites are created with opts.
func NewTreeBuilder(opts ...Option) *TreeBuilder {
	return &TreeBuilder{
		opts:  opts,
		stack: []*Composite{NewComposite(opts...)},
	}
}

// Leaf adds a Leaf to the open composite. An empty name yields an unnamed leaf.
func (b *TreeBuilder) Leaf(name string) *TreeBuilder {
	return b.Add(NewNamedLeaf(name))
}

// Leaf2 adds a Leaf2 to the open composite.
func (b *TreeBuilder) Leaf2(name string) *TreeBuilder {
	return b.Add(NewNamedLeaf2(name))
}

// Add adds an already built node to the open composite.
func (b *TreeBuilder) Add(c Component) *TreeBuilder {
	if !b.usable() {
		return b
	}
	if err := b.current().Add(c); err != nil {
		b.err = err
	}
	return b
}

// Begin opens a new composite as the last child of the open one.
func (b *TreeBuilder) Begin() *TreeBuilder {
	if !b.usable() {
		return b
	}
	child := NewComposite(b.opts...)
	if err := b.current().Add(child); err != nil {
		b.err = err
		return b
	}
	b.stack = append(b.stack, child)
	return b
}

// End closes the composite opened by the matching Begin.
func (b *TreeBuilder) End() *TreeBuilder {
	if !b.usable() {
		return b
	}
	if len(b.stack) == 1 {
		b.err = errors.Wrap(ErrUnbalanced, "end without begin")
		return b
	}
	b.stack = b.stack[:len(b.stack)-1]
	return b
}

// Build returns the root composite. Calling it again without further steps returns the same root.
func (b *TreeBuilder) Build(ctx context.Context) (*Composite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.err != nil {
		return nil, b.err
	}
	if open := len(b.stack) - 1; open > 0 {
		return nil, errors.Wrapf(ErrUnbalanced, "%d composite(s) left open", open)
	}
	b.built = true
	return b.stack[0], nil
}

// usable records ErrBuilderSpent on the first step after a successful Build.
func (b *TreeBuilder) usable() bool {
	if b.err != nil {
		return false
	}
	if b.built {
		b.err = ErrBuilderSpent
		return false
	}
	return true
}

func (b *TreeBuilder) current() *Composite {
	return b.stack[len(b.stack)-1]
}
