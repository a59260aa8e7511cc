package composite

import "github.com/go-leo/patterns/specification"

// Select returns, in pre-order, every node of the tree rooted at root that satisfies spec.
func Select(root Component, spec specification.Specification[Component]) ([]Component, error) {
	if spec == nil {
		return nil, ErrNilSpecification
	}
	var selected []Component
	err := Walk(root, func(c Component, _ int) error {
		if spec.IsSatisfiedBy(c) {
			selected = append(selected, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return selected, nil
}

// IsLeaf is satisfied by Leaf and Leaf2 nodes.
func IsLeaf() specification.Specification[Component] {
	return specification.New(func(c Component) bool {
		switch c.(type) {
		case *Leaf, *Leaf2:
			return true
		default:
			return false
		}
	})
}

// IsComposite is satisfied by Composite nodes.
func IsComposite() specification.Specification[Component] {
	return specification.New(func(c Component) bool {
		_, ok := c.(*Composite)
		return ok
	})
}

// Named is satisfied by leaves carrying the given name.
func Named(name string) specification.Specification[Component] {
	return specification.New(func(c Component) bool {
		switch c := c.(type) {
		case *Leaf:
			return c.name == name
		case *Leaf2:
			return c.name == name
		default:
			return false
		}
	})
}
