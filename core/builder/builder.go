// Package builder assembles composite products step by step. A Builder owns
// the product under construction; a Director owns the step ordering. Calling
// Result before all steps ran simply yields a partially populated product,
// and re-running a step overwrites that part.
package builder

// Product is the composite value a builder assembles.
type Product struct {
	PartA string
	PartB string
	PartC string
}

// Builder is the step contract a Director drives.
type Builder interface {
	BuildPartA()
	BuildPartB()
	BuildPartC()
	// Reset discards the product under construction.
	Reset()
	// Result returns the product assembled so far.
	Result() Product
}

// PartsBuilder is the reference Builder. Each step fills one named part.
type PartsBuilder struct {
	product Product
}

// NewPartsBuilder returns a builder with an empty product.
func NewPartsBuilder() *PartsBuilder { return &PartsBuilder{} }

func (b *PartsBuilder) BuildPartA() { b.product.PartA = "Part A" }
func (b *PartsBuilder) BuildPartB() { b.product.PartB = "Part B" }
func (b *PartsBuilder) BuildPartC() { b.product.PartC = "Part C" }

func (b *PartsBuilder) Reset() { b.product = Product{} }

func (b *PartsBuilder) Result() Product { return b.product }

// Director runs a fixed construction sequence against any Builder. It holds
// no state beyond the builder reference; re-running Construct re-executes
// every step, overwriting prior parts.
type Director struct {
	builder Builder
}

// NewDirector returns a Director driving b.
func NewDirector(b Builder) *Director { return &Director{builder: b} }

// Construct runs the full A, B, C sequence.
func (d *Director) Construct() {
	d.builder.BuildPartA()
	d.builder.BuildPartB()
	d.builder.BuildPartC()
}
