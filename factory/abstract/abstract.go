// Package abstract creates families of related products without naming their concrete types.
package abstract

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-leo/patterns/factory"
)

// ErrUnknownFamily no factory exists for the requested family.
var ErrUnknownFamily = errors.New("abstract: unknown family")

// Factory makes one product of each kind, all from the same family.
type Factory interface {
	CreateProduct() Product
	CreateProduct2() Product2
}

var (
	_ Factory = FactoryA{}
	_ Factory = FactoryB{}
)

type FactoryA struct{}

func (FactoryA) CreateProduct() Product {
	return ProductA{}
}

func (FactoryA) CreateProduct2() Product2 {
	return Product2A{}
}

type FactoryB struct{}

func (FactoryB) CreateProduct() Product {
	return ProductB{}
}

func (FactoryB) CreateProduct2() Product2 {
	return Product2B{}
}

// Family selects a product family.
type Family int

const (
	FamilyA Family = iota
	FamilyB
)

func (f Family) String() string {
	switch f {
	case FamilyA:
		return "A"
	case FamilyB:
		return "B"
	default:
		return "unknown"
	}
}

// Maker returns the factory of factories: it creates the Factory of a Family.
func Maker() factory.Factory[Factory, Family] {
	return factory.Func[Factory, Family](makeFactory)
}

func makeFactory(ctx context.Context, family Family) (Factory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch family {
	case FamilyA:
		return FactoryA{}, nil
	case FamilyB:
		return FactoryB{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFamily, "%d", int(family))
	}
}
