package visitor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Konsultn-Engineering/stagesql/dialect"
)

const DefaultCacheSize = 1024

// Config selects how a Renderer writes SQL.
type Config struct {
	Dialect      string `json:"dialect" yaml:"dialect"`
	CacheSize    *int   `json:"cache_size,omitempty" yaml:"cache_size,omitempty"`
	InlineValues bool   `json:"inline_values" yaml:"inline_values"`
}

// ParseConfig reads a YAML (or JSON) document into a validated Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("visitor: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("visitor: load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.Dialect == "" {
		return fmt.Errorf("visitor: dialect is required")
	}
	if _, err := dialect.ByName(c.Dialect); err != nil {
		return err
	}
	if c.CacheSize != nil && *c.CacheSize < 0 {
		return fmt.Errorf("visitor: cache_size must not be negative, got %d", *c.CacheSize)
	}
	return nil
}

// cacheSize is CacheSize, or DefaultCacheSize when unset. Zero disables the
// cache.
func (c Config) cacheSize() int {
	if c.CacheSize == nil {
		return DefaultCacheSize
	}
	return *c.CacheSize
}
