// Package orders defines the order model and the Processor capability that
// decorators wrap to layer cross-cutting behavior around order handling.
package orders

import (
	"github.com/google/uuid"

	"github.com/patternkit/patternkit/core/prototype"
)

// Item is one line of an order.
type Item struct {
	SKU   string
	Qty   int
	Price int64
}

// Order is the value passed through a processor chain. Processors treat it
// as read-only.
type Order struct {
	ID       string
	Customer string
	Amount   int64
	Items    []Item
	Meta     map[string]string
}

// New returns an order with a fresh ID.
func New(customer string, amount int64) Order {
	return Order{ID: uuid.NewString(), Customer: customer, Amount: amount}
}

// Clone is deep: the item slice and meta map are copied, so the clone shares
// no mutable state with the source.
func (o Order) Clone() Order {
	o.Items = prototype.CopySlice(o.Items)
	o.Meta = prototype.CopyMap(o.Meta)
	return o
}

// ShallowClone copies only the top-level fields. Items and Meta stay aliased
// with the source, so mutations through either handle are visible in both.
func (o Order) ShallowClone() Order {
	return o
}

var _ prototype.Cloner[Order] = Order{}
