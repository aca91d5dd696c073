// Package registry provides a small generic registry used to instantiate
// implementations from configuration. An implementation is selected by a
// type string and built from a map of raw settings. Factories decode the
// settings into typed structs and return the concrete value.
//
// Example usage:
//
//	reg := registry.New[orders.Processor]()
//	reg.Register("terminal", func(conf map[string]any) (orders.Processor, error) {
//	    var c struct{ Label string `json:"label"` }
//	    if err := registry.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return orders.Terminal(c.Label), nil
//	})
//	p, err := reg.Create(registry.ModuleConfig{Type: "terminal", Conf: map[string]any{"label": "done"}})
package registry
