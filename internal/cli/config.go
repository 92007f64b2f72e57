package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dkoval/wallcut/pkg/render"
	"github.com/dkoval/wallcut/pkg/wall"
)

// Config holds user preferences loaded from ~/.config/wallcut/config.toml.
// Command-line flags override config values, which override the defaults.
type Config struct {
	// CrossingSign is the single character drawn where the crossline
	// passes through the wall.
	CrossingSign string `toml:"crossing_sign"`

	// MaxRows caps the randomly drawn row count.
	MaxRows int `toml:"max_rows"`

	// MaxRowLength caps the randomly drawn row length.
	MaxRowLength int `toml:"max_row_length"`

	// MaxExtraLength caps the widening applied when normalizing an uneven
	// wall.
	MaxExtraLength int `toml:"max_extra_length"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		CrossingSign:   render.DefaultSign,
		MaxRows:        wall.DefaultMaxRows,
		MaxRowLength:   wall.DefaultMaxRowLength,
		MaxExtraLength: wall.DefaultMaxExtraLength,
	}
}

// LoadConfig reads a TOML config file, layering its values over the
// defaults. A missing file is not an error and yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// generatorOptions maps the config caps onto wall generation options.
func (cfg Config) generatorOptions() *wall.Options {
	return &wall.Options{
		MaxRows:        cfg.MaxRows,
		MaxRowLength:   cfg.MaxRowLength,
		MaxExtraLength: cfg.MaxExtraLength,
	}
}
