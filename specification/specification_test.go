package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type shape struct {
	Kind  string
	Sides int
}

func TestSpecification(t *testing.T) {
	isTriangle := New[shape](func(s shape) bool {
		return s.Sides == 3
	})
	isSquare := New[shape](func(s shape) bool {
		return s.Kind == "square"
	})
	isPolygon := New[shape](func(s shape) bool {
		return s.Sides > 2
	})

	square := shape{Kind: "square", Sides: 4}
	assert.False(t, isTriangle.IsSatisfiedBy(square))
	assert.True(t, isSquare.IsSatisfiedBy(square))
	assert.True(t, isPolygon.IsSatisfiedBy(square))

	assert.True(t, And(isSquare, isPolygon).IsSatisfiedBy(square))
	assert.False(t, And(isSquare, isTriangle).IsSatisfiedBy(square))

	assert.True(t, Or(isTriangle, isSquare).IsSatisfiedBy(square))
	assert.False(t, Or(isTriangle, Not(isPolygon)).IsSatisfiedBy(square))

	assert.False(t, Not(isSquare).IsSatisfiedBy(square))
	assert.True(t, Not(isTriangle).IsSatisfiedBy(square))
}

func TestConjunctionDisjunction(t *testing.T) {
	circle := shape{Kind: "circle"}
	isCircle := Func[shape](func(s shape) bool { return s.Kind == "circle" })
	noSides := Func[shape](func(s shape) bool { return s.Sides == 0 })
	isSquare := Func[shape](func(s shape) bool { return s.Kind == "square" })

	assert.True(t, Conjunction[shape]().IsSatisfiedBy(circle))
	assert.False(t, Disjunction[shape]().IsSatisfiedBy(circle))

	assert.True(t, Conjunction[shape](isCircle, noSides).IsSatisfiedBy(circle))
	assert.False(t, Conjunction[shape](isCircle, noSides, isSquare).IsSatisfiedBy(circle))

	assert.True(t, Disjunction[shape](isSquare, noSides).IsSatisfiedBy(circle))
	assert.False(t, Disjunction[shape](isSquare, Not[shape](isCircle)).IsSatisfiedBy(circle))
}

func TestShortCircuit(t *testing.T) {
	var calls int
	counted := Func[shape](func(shape) bool {
		calls++
		return true
	})
	always := New[shape](func(shape) bool { return true })
	never := Not[shape](always)

	assert.False(t, And[shape](never, counted).IsSatisfiedBy(shape{}))
	assert.True(t, Or[shape](always, counted).IsSatisfiedBy(shape{}))
	assert.Zero(t, calls)

	assert.True(t, And[shape](always, counted).IsSatisfiedBy(shape{}))
	assert.Equal(t, 1, calls)
}
