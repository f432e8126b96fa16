package cfg

import (
	"fmt"

	"fetcharr/internal/models"
	"fetcharr/internal/validation"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// LoadBatchConfig reads and decodes the batch configuration file. Any
// viper-supported format works (JSON, YAML, TOML, ...). Failures here
// are pre-flight: the whole run is invalid.
func LoadBatchConfig(path string) (*models.BatchConfig, error) {
	if _, err := validation.ValidateFile(path); err != nil {
		return nil, fmt.Errorf("config not found: %s: %w", path, models.ErrInvalidSpec)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed loading config file %q: %v: %w", path, err, models.ErrInvalidSpec)
	}

	var c models.BatchConfig
	// Weak typing lets numeric rate limits and bitrates written as JSON
	// numbers or strings decode either way.
	if err := v.Unmarshal(&c, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("malformed config file %q: %v: %w", path, err, models.ErrInvalidSpec)
	}

	return &c, nil
}
