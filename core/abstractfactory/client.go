package abstractfactory

// Client binds to one factory instance at construction, so every product it
// hands out belongs to the same family.
type Client struct {
	factory Factory
}

// NewClient returns a client bound to f.
func NewClient(f Factory) *Client { return &Client{factory: f} }

// Describe exercises both product roles of the bound family.
func (c *Client) Describe() (string, string) {
	return c.factory.CreateProductA().OperationA(), c.factory.CreateProductB().OperationB()
}
