package config

import "fmt"

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum severity to emit: "debug", "info", "warn", "error".
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}

// FactoryConfig selects the abstract-factory product family.
type FactoryConfig struct {
	// Family names the registered factory family, e.g. "family1".
	Family string `json:"family"`
	// Conf carries raw settings for the family factory.
	Conf map[string]any `json:"conf"`
}

// SetDefaults applies sane defaults.
func (c *FactoryConfig) SetDefaults() {
	if c.Family == "" {
		c.Family = "family1"
	}
}

// Validate checks mandatory fields.
func (c FactoryConfig) Validate() error {
	if c.Family == "" {
		return fmt.Errorf("family is required")
	}
	return nil
}

// OrdersConfig shapes the order-processing chain.
type OrdersConfig struct {
	// Label is the terminal processor's label.
	Label string `json:"label"`
	// Validation enables the validation decorator.
	Validation bool `json:"validation"`
	// Receipt enables the receipt decorator.
	Receipt bool `json:"receipt"`
}

// SetDefaults applies sane defaults.
func (c *OrdersConfig) SetDefaults() {
	if c.Label == "" {
		c.Label = "processed"
	}
}

// MetricsConfig toggles Prometheus instrumentation of the chain.
type MetricsConfig struct {
	Enabled bool `json:"enabled"`
}
