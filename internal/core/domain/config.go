package domain

import (
	"runtime"

	"go.trai.ch/string16"
	"go.trai.ch/zerr"
)

const (
	// ConfigFileYAML is the default YAML config file name.
	ConfigFileYAML = "string16.yaml"
	// ConfigFileTOML is the default TOML config file name.
	ConfigFileTOML = "string16.toml"
	// EnvEncoding overrides Config.Encoding when set.
	EnvEncoding = "STRING16_ENCODING"
)

// Config holds the CLI settings read from string16.yaml or string16.toml.
type Config struct {
	// Encoding is the charset used for --file and stdin input.
	Encoding Encoding `yaml:"encoding" toml:"encoding"`
	// Precision is the default significant digit count for doubles; 0 means shortest.
	Precision int `yaml:"precision" toml:"precision"`
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool `yaml:"json_logs" toml:"json_logs"`
	// Trace logs one line per finished operation span.
	Trace bool `yaml:"trace" toml:"trace"`
	// Concurrency bounds how many inputs are processed at once.
	Concurrency int `yaml:"concurrency" toml:"concurrency"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Encoding:    EncodingUTF8,
		Concurrency: runtime.NumCPU(),
	}
}

// Validate normalizes the encoding name and checks every field.
func (c *Config) Validate() error {
	enc, ok := NormalizeEncoding(string(c.Encoding))
	if !ok {
		return zerr.With(zerr.Wrap(ErrInvalidEncoding, "validate config"), "encoding", string(c.Encoding))
	}
	c.Encoding = enc

	if err := ValidatePrecision(c.Precision); err != nil {
		return zerr.Wrap(err, "validate config")
	}

	if c.Concurrency < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConcurrency, "validate config"), "concurrency", c.Concurrency)
	}
	if c.Concurrency == 0 {
		c.Concurrency = runtime.NumCPU()
	}
	return nil
}

// ValidatePrecision accepts 0 (shortest form) or 1 to string16.MaxPrecision.
func ValidatePrecision(p int) error {
	if p < 0 || p > string16.MaxPrecision {
		return zerr.With(zerr.Wrap(ErrInvalidPrecision, "check precision"), "precision", p)
	}
	return nil
}
