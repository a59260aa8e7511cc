package decorator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, b Beverage) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, b.Serve(&buf))
	return buf.String()
}

func TestBeverage(t *testing.T) {
	var coffee Beverage = OriginalCoffee{}
	assert.Equal(t, "original coffee", serve(t, coffee))

	coffee = Honey().Decorate(coffee)
	assert.Equal(t, "original coffee add honey-", serve(t, coffee))

	coffee = Milk().Decorate(coffee)
	assert.Equal(t, "original coffee add honey- add milk-", serve(t, coffee))
}

func TestChainOrder(t *testing.T) {
	coffee := Chain[Beverage](OriginalCoffee{}, Milk(), Honey())
	assert.Equal(t, "original coffee add honey- add milk-", serve(t, coffee))

	assert.Equal(t, "original coffee", serve(t, Chain[Beverage](OriginalCoffee{})))
}

func TestChainGeneric(t *testing.T) {
	upper := Func[string](strings.ToUpper)
	exclaim := Func[string](func(s string) string { return s + "!" })
	assert.Equal(t, "HI!", Chain[string]("hi", upper, exclaim))
	assert.Equal(t, "HI!", Chain[string]("hi", exclaim, upper))
	quote := Func[string](func(s string) string { return "'" + s + "'" })
	assert.Equal(t, "'hi'!", Chain[string]("hi", exclaim, quote))
}

func TestBeverageErrors(t *testing.T) {
	assert.ErrorIs(t, Honey().Decorate(nil).Serve(&bytes.Buffer{}), ErrNilBeverage)
	assert.ErrorIs(t, Milk().Decorate(OriginalCoffee{}).Serve(nil), ErrNilWriter)
}
