// Package config holds the command-line configuration: the grammar and
// dictionary files to load, folding options, batch settings and logging.
package config

// Config is the full runtime configuration.
// Priority: flags > ENV > YAML > defaults.
type Config struct {
	Dictionaries []string `yaml:"dictionaries" env:"AFFIXMORPH_DICTIONARIES" env-separator:","`
	Affixes      []string `yaml:"affixes"      env:"AFFIXMORPH_AFFIXES"      env-separator:","`
	Exceptions   string   `yaml:"exceptions"   env:"AFFIXMORPH_EXCEPTIONS"`

	Depth         int    `yaml:"depth"         env:"AFFIXMORPH_DEPTH"         env-default:"5"`
	Lowercase     bool   `yaml:"lowercase"     env:"AFFIXMORPH_LOWERCASE"`
	Normalization string `yaml:"normalization" env:"AFFIXMORPH_NORMALIZATION" env-default:"nfc"`
	Language      string `yaml:"language"      env:"AFFIXMORPH_LANGUAGE"      env-default:"und"`

	Workers   int    `yaml:"workers"    env:"AFFIXMORPH_WORKERS"    env-default:"4"`
	CacheSize int    `yaml:"cache_size" env:"AFFIXMORPH_CACHE_SIZE" env-default:"10000"`
	Format    string `yaml:"format"     env:"AFFIXMORPH_FORMAT"     env-default:"text"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"  env:"AFFIXMORPH_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"AFFIXMORPH_LOG_FORMAT" env-default:"text"`
}

// Normalize reports whether words are NFC-normalized on load and input.
func (c *Config) Normalize() bool {
	return c.Normalization == NormalizationNFC
}

const (
	NormalizationNFC  = "nfc"
	NormalizationNone = "none"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)
