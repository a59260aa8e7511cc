package visitor

var _ Visitor = (*Counter)(nil)

// Counter tallies the elements it visits, per variant.
type Counter struct {
	Element1 int
	Element2 int
}

func (c *Counter) VisitConcreteElement1(*ConcreteElement1) error {
	c.Element1++
	return nil
}

func (c *Counter) VisitConcreteElement2(*ConcreteElement2) error {
	c.Element2++
	return nil
}

// Total returns the number of elements visited.
func (c *Counter) Total() int {
	return c.Element1 + c.Element2
}
