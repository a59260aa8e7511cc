package composite

// Stats summarises the shape of a tree.
type Stats struct {
	Leaves     int
	Leaf2s     int
	Composites int
	// MaxDepth is the depth of the deepest node, the root being at depth 0.
	MaxDepth int
}

// Nodes returns the total number of nodes counted.
func (s Stats) Nodes() int {
	return s.Leaves + s.Leaf2s + s.Composites
}

// Count walks the tree rooted at root and tallies its nodes.
func Count(root Component) (Stats, error) {
	var stats Stats
	err := Walk(root, func(c Component, depth int) error {
		switch c.(type) {
		case *Leaf:
			stats.Leaves++
		case *Leaf2:
			stats.Leaf2s++
		case *Composite:
			stats.Composites++
		}
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}
