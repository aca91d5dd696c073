package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration for the demo service.
type Config struct {
	Logging LoggingConfig `json:"logging"`
	Factory FactoryConfig `json:"factory"`
	Orders  OrdersConfig  `json:"orders"`
	Metrics MetricsConfig `json:"metrics"`
}

// Load reads the configuration file at path. YAML and JSON are supported,
// selected by file extension. Environment variables prefixed with PK_
// override file values ("PK_ORDERS__LABEL" maps to "orders.label").
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("PK_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pk_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Factory.SetDefaults()
	cfg.Orders.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Factory.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
