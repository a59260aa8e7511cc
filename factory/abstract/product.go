package abstract

// Product is the first kind of product every family makes.
type Product interface {
	Description() string
}

// Product2 is the second kind of product every family makes.
type Product2 interface {
	Description() string
}

// ProductA is family A's Product.
type ProductA struct{}

func (ProductA) Description() string {
	return "productA"
}

// ProductB is family B's Product.
type ProductB struct{}

func (ProductB) Description() string {
	return "productB"
}

// Product2A is family A's Product2.
type Product2A struct{}

func (Product2A) Description() string {
	return "product2A"
}

// Product2B is family B's Product2.
type Product2B struct{}

func (Product2B) Description() string {
	return "product2B"
}
