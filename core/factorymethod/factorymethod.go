// Package factorymethod isolates variation to object creation. Creators
// supply a FactoryMethod returning the concrete product; SomeOperation
// applies the shared post-processing uniformly across creators.
package factorymethod

// Product is what creators produce.
type Product interface {
	Operation() string
}

// Creator defers the choice of concrete Product to its implementation.
type Creator interface {
	FactoryMethod() Product
}

// SomeOperation is the behavior common to all creators. Only the product
// creation varies per Creator.
func SomeOperation(c Creator) string {
	return "Creator: " + c.FactoryMethod().Operation()
}

// ConcreteProductA is the product variant created by ConcreteCreatorA.
type ConcreteProductA struct{}

func (ConcreteProductA) Operation() string { return "ConcreteProductA" }

// ConcreteProductB is the product variant created by ConcreteCreatorB.
type ConcreteProductB struct{}

func (ConcreteProductB) Operation() string { return "ConcreteProductB" }

// ConcreteCreatorA creates ConcreteProductA values.
type ConcreteCreatorA struct{}

func (ConcreteCreatorA) FactoryMethod() Product { return ConcreteProductA{} }

// ConcreteCreatorB creates ConcreteProductB values.
type ConcreteCreatorB struct{}

func (ConcreteCreatorB) FactoryMethod() Product { return ConcreteProductB{} }
