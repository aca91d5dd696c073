package orders

import "fmt"

// Processor handles one order and reports the outcome as text.
type Processor interface {
	Process(o Order) (string, error)
}

// ProcessorFunc adapts an ordinary function to the Processor interface.
type ProcessorFunc func(Order) (string, error)

// Process calls f(o).
func (f ProcessorFunc) Process(o Order) (string, error) { return f(o) }

// Decorator wraps a Processor, adding behavior around the delegate call.
type Decorator func(Processor) Processor

// Chain decorates p with all decorators. The first decorator becomes the
// outermost wrapper.
func Chain(p Processor, decorators ...Decorator) Processor {
	for i := len(decorators) - 1; i >= 0; i-- {
		p = decorators[i](p)
	}
	return p
}

// Terminal is the innermost processor of a chain. It performs the base
// handling and reports it with the given label.
func Terminal(label string) Processor {
	if label == "" {
		label = "processed"
	}
	return ProcessorFunc(func(o Order) (string, error) {
		return fmt.Sprintf("%s order %s", label, o.ID), nil
	})
}
