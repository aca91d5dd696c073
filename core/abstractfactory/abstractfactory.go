// Package abstractfactory produces families of mutually compatible products
// behind one factory interface. All products used along a single code path
// must come from the same factory instance; the Client helper takes the
// factory once and derives everything from it so families cannot be mixed
// without deliberately constructing a second client.
package abstractfactory

// ProductA is the first product role of a family.
type ProductA interface {
	OperationA() string
}

// ProductB is the second product role of a family.
type ProductB interface {
	OperationB() string
}

// Factory creates one consistent family of products.
type Factory interface {
	CreateProductA() ProductA
	CreateProductB() ProductB
}

// ConcreteFactory1 produces the "...1" family.
type ConcreteFactory1 struct{}

func (ConcreteFactory1) CreateProductA() ProductA { return productA1{} }
func (ConcreteFactory1) CreateProductB() ProductB { return productB1{} }

// ConcreteFactory2 produces the "...2" family.
type ConcreteFactory2 struct{}

func (ConcreteFactory2) CreateProductA() ProductA { return productA2{} }
func (ConcreteFactory2) CreateProductB() ProductB { return productB2{} }

type productA1 struct{}

func (productA1) OperationA() string { return "ConcreteProductA1" }

type productB1 struct{}

func (productB1) OperationB() string { return "ConcreteProductB1" }

type productA2 struct{}

func (productA2) OperationA() string { return "ConcreteProductA2" }

type productB2 struct{}

func (productB2) OperationB() string { return "ConcreteProductB2" }
