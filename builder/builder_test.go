package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirector(t *testing.T) {
	director := NewDirector(NewConcreteBuilderA())
	product, err := director.ConstructUniform(context.Background(), "great")
	require.NoError(t, err)
	assert.Equal(t, "Agreat, Agreat, Agreat", product.String())

	director.SetBuilder(NewConcreteBuilderB())
	product, err = director.Construct(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Product{PartA: "B0", PartB: "B1", PartC: "B2"}, product)
}

func TestBuilderPartial(t *testing.T) {
	b := NewConcreteBuilderA()
	b.BuildPartB("x")
	product, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ", Ax, ", product.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirectorWithoutBuilder(t *testing.T) {
	_, err := NewDirector(nil).Construct(context.Background())
	assert.ErrorIs(t, err, ErrNilBuilder)
}
