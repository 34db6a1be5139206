package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no path is given and AFFIXMORPH_CONFIG is unset.
const DefaultPath = "./affixmorph.yaml"

// Load reads configuration from a YAML file and environment variables.
// The file is path, else AFFIXMORPH_CONFIG, else DefaultPath. A missing
// DefaultPath is not an error: configuration then comes from ENV and
// defaults only. An explicitly named file must exist.
//
// Load does not validate; callers apply their overrides and then call
// Validate.
func Load(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("AFFIXMORPH_CONFIG")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
