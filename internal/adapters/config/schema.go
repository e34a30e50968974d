package config

// fileConfig is the on-disk shape shared by string16.yaml and string16.toml.
type fileConfig struct {
	Encoding    string `yaml:"encoding" toml:"encoding"`
	Precision   int    `yaml:"precision" toml:"precision"`
	JSONLogs    bool   `yaml:"json_logs" toml:"json_logs"`
	Trace       bool   `yaml:"trace" toml:"trace"`
	Concurrency int    `yaml:"concurrency" toml:"concurrency"`
}

var knownKeys = map[string]bool{
	"encoding":    true,
	"precision":   true,
	"json_logs":   true,
	"trace":       true,
	"concurrency": true,
}
