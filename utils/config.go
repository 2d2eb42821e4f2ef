package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
)

// Config holds the configuration for the board renderer
type Config struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// DefaultConfig returns sensible defaults: the classic 8x8 board
func DefaultConfig() Config {
	return Config{
		Rows: 8,
		Cols: 8,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if config.Rows < 1 || config.Cols < 1 {
		return config, errors.Errorf("[LoadConfig] board dimensions must be positive, got %dx%d", config.Rows, config.Cols)
	}

	return config, nil
}
