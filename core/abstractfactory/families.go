package abstractfactory

import "github.com/patternkit/patternkit/core/registry"

// Families maps family names to factory instances, so a family can be
// chosen from configuration instead of re-selected per call.
var Families = registry.New[Factory]()

func init() {
	_ = Families.Register("family1", func(map[string]any) (Factory, error) {
		return ConcreteFactory1{}, nil
	})
	_ = Families.Register("family2", func(map[string]any) (Factory, error) {
		return ConcreteFactory2{}, nil
	})
}

// ForName returns the factory registered under name.
func ForName(name string) (Factory, error) {
	return Families.Create(registry.ModuleConfig{Type: name})
}
