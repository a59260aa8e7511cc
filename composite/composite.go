package composite

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Component is a node of a part-whole tree. Leaves and composites are treated uniformly:
// rendering a composite renders its whole subtree.
//
// The set of components is closed: Leaf, Leaf2 and Composite.
type Component interface {
	// Render writes the node, and for a composite its subtree, to w.
	Render(w io.Writer) error

	// Accept dispatches v to the Visit method of the concrete node.
	Accept(v Visitor) error

	component()
}

var (
	_ Component = (*Leaf)(nil)
	_ Component = (*Leaf2)(nil)
	_ Component = (*Composite)(nil)
)

// Leaf is a terminal node.
type Leaf struct {
	// name also keeps Leaf non-zero-sized, so distinct leaves never share an address.
	name string
}

func NewLeaf() *Leaf {
	return &Leaf{}
}

func NewNamedLeaf(name string) *Leaf {
	return &Leaf{name: name}
}

func (l *Leaf) Name() string {
	return l.name
}

func (l *Leaf) Render(w io.Writer) error {
	if l == nil {
		return ErrNilComponent
	}
	return writeLine(w, label("Leaf", l.name))
}

func (l *Leaf) Accept(v Visitor) error {
	if l == nil {
		return ErrNilComponent
	}
	if nilVisitor(v) {
		return ErrNilVisitor
	}
	return v.VisitLeaf(l)
}

func (*Leaf) component() {}

// Leaf2 is a terminal node that differs from Leaf only in what it renders.
type Leaf2 struct {
	name string
}

func NewLeaf2() *Leaf2 {
	return &Leaf2{}
}

func NewNamedLeaf2(name string) *Leaf2 {
	return &Leaf2{name: name}
}

func (l *Leaf2) Name() string {
	return l.name
}

func (l *Leaf2) Render(w io.Writer) error {
	if l == nil {
		return ErrNilComponent
	}
	return writeLine(w, label("Leaf2", l.name))
}

func (l *Leaf2) Accept(v Visitor) error {
	if l == nil {
		return ErrNilComponent
	}
	if nilVisitor(v) {
		return ErrNilVisitor
	}
	return v.VisitLeaf2(l)
}

func (*Leaf2) component() {}

// Composite is an interior node owning an ordered sequence of children.
//
// A Composite must not be added to itself or to any of its descendants. This is not
// checked; rendering or walking a cyclic structure never terminates.
type Composite struct {
	children []Component
	options  *options
}

func NewComposite(opts ...Option) *Composite {
	return &Composite{options: newOptions(opts...)}
}

// Add appends child. The same node may be added more than once.
func (c *Composite) Add(child Component) error {
	if c == nil || isNil(child) {
		return ErrNilComponent
	}
	c.children = append(c.children, child)
	c.logger().Debug("child added", zap.String("kind", kindOf(child)), zap.Int("children", len(c.children)))
	return nil
}

// Remove drops the first child identical to child, keeping the order of the rest.
// Removing an absent child is a no-op unless the composite was created with StrictRemove.
func (c *Composite) Remove(child Component) error {
	if c == nil || isNil(child) {
		return ErrNilComponent
	}
	i := slices.Index(c.children, child)
	if i < 0 {
		if c.strict() {
			return errors.Wrapf(ErrChildNotFound, "remove %s", kindOf(child))
		}
		c.logger().Debug("remove ignored, child not found", zap.String("kind", kindOf(child)))
		return nil
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.logger().Debug("child removed", zap.String("kind", kindOf(child)), zap.Int("children", len(c.children)))
	return nil
}

// Children returns a copy of the current children. Later mutations of the composite
// are not reflected in the returned slice.
func (c *Composite) Children() []Component {
	if c == nil {
		return nil
	}
	return slices.Clone(c.children)
}

// Len returns the number of immediate children.
func (c *Composite) Len() int {
	if c == nil {
		return 0
	}
	return len(c.children)
}

// Render writes the number of immediate children, then renders every child in
// insertion order.
func (c *Composite) Render(w io.Writer) error {
	if c == nil {
		return ErrNilComponent
	}
	if err := writeLine(w, fmt.Sprintf("%d children", len(c.children))); err != nil {
		return err
	}
	for i, child := range c.children {
		if err := child.Render(w); err != nil {
			return errors.Wrapf(err, "render child %d", i)
		}
	}
	return nil
}

func (c *Composite) Accept(v Visitor) error {
	if c == nil {
		return ErrNilComponent
	}
	if nilVisitor(v) {
		return ErrNilVisitor
	}
	return v.VisitComposite(c)
}

// AcceptChildren dispatches v to every child in insertion order, stopping at the first error.
func (c *Composite) AcceptChildren(v Visitor) error {
	if c == nil {
		return ErrNilComponent
	}
	if nilVisitor(v) {
		return ErrNilVisitor
	}
	for _, child := range c.children {
		if err := child.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (*Composite) component() {}

func (c *Composite) logger() *zap.Logger {
	if c.options == nil {
		return zap.NewNop()
	}
	return c.options.Logger
}

func (c *Composite) strict() bool {
	return c.options != nil && c.options.StrictRemove
}

func writeLine(w io.Writer, line string) error {
	if w == nil {
		return ErrNilWriter
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return errors.Wrap(err, "composite: write")
	}
	return nil
}

func label(kind, name string) string {
	if name == "" {
		return kind
	}
	return kind + " " + name
}

// isNil reports whether c is nil or holds a nil pointer.
func isNil(c Component) bool {
	switch c := c.(type) {
	case nil:
		return true
	case *Leaf:
		return c == nil
	case *Leaf2:
		return c == nil
	case *Composite:
		return c == nil
	default:
		return false
	}
}

func kindOf(c Component) string {
	switch c.(type) {
	case *Leaf:
		return KindLeaf
	case *Leaf2:
		return KindLeaf2
	case *Composite:
		return KindComposite
	default:
		return fmt.Sprintf("%T", c)
	}
}
