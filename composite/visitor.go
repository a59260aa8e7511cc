package composite

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Visitor represents an operation applied to a tree. It has one method per concrete
// node type; Component.Accept selects the method from the node's own type.
//
// Composites are not descended automatically. A visitor that wants the subtree calls
//
//	func (v *myVisitor) VisitComposite(c *composite.Composite) error {
//		return c.AcceptChildren(v)
//	}
type Visitor interface {
	VisitLeaf(l *Leaf) error
	VisitLeaf2(l *Leaf2) error
	VisitComposite(c *Composite) error
}

// WalkFunc is called for every node reached by Walk, with its depth below the root.
// Returning SkipChildren from a composite prunes its subtree, and from a leaf is the same as
// returning nil. Any other error stops the walk.
type WalkFunc func(c Component, depth int) error

// Walk traverses the tree rooted at root depth-first, in pre-order, visiting children
// in insertion order.
func Walk(root Component, fn WalkFunc) error {
	if isNil(root) {
		return ErrNilComponent
	}
	if fn == nil {
		return ErrNilVisitor
	}
	return root.Accept(&walker{fn: fn})
}

type walker struct {
	fn    WalkFunc
	depth int
}

func (w *walker) VisitLeaf(l *Leaf) error {
	return skipped(w.fn(l, w.depth))
}

func (w *walker) VisitLeaf2(l *Leaf2) error {
	return skipped(w.fn(l, w.depth))
}

func (w *walker) VisitComposite(c *Composite) error {
	if err := w.fn(c, w.depth); err != nil {
		return skipped(err)
	}
	w.depth++
	defer func() { w.depth-- }()
	return c.AcceptChildren(w)
}

// skipped drops SkipChildren, which never escapes Walk.
func skipped(err error) error {
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

// nilVisitor reports whether v is nil or a nil pointer behind the interface.
func nilVisitor(v Visitor) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
