package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"text", "json"}
	validFormats       = []string{FormatText, FormatJSON, FormatYAML}
	validNormalization = []string{NormalizationNFC, NormalizationNone}
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Dictionaries) == 0 {
		errs = append(errs, errors.New("dictionaries must not be empty"))
	}
	if len(c.Affixes) == 0 {
		errs = append(errs, errors.New("affixes must not be empty"))
	}
	if len(c.Dictionaries) != len(c.Affixes) {
		errs = append(errs, fmt.Errorf("dictionaries and affixes must pair up (got %d and %d)", len(c.Dictionaries), len(c.Affixes)))
	}
	if c.Depth <= 0 {
		errs = append(errs, fmt.Errorf("depth must be > 0 (got %d)", c.Depth))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be > 0 (got %d)", c.Workers))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cache_size must be >= 0 (got %d)", c.CacheSize))
	}
	if !slices.Contains(validFormats, c.Format) {
		errs = append(errs, fmt.Errorf("format must be one of %v (got %q)", validFormats, c.Format))
	}
	if !slices.Contains(validNormalization, c.Normalization) {
		errs = append(errs, fmt.Errorf("normalization must be one of %v (got %q)", validNormalization, c.Normalization))
	}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, c.Log.Level))
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v (got %q)", validLogFormats, c.Log.Format))
	}

	return errors.Join(errs...)
}
