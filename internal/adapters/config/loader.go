// Package config loads string16.yaml or string16.toml into a domain.Config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/string16/internal/core/domain"
	"go.trai.ch/string16/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML and TOML files.
type Loader struct {
	Logger ports.Logger
	// Dir is searched for the default file names when no path is given.
	Dir string
}

// NewLoader creates a Loader searching the working directory.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Dir: "."}
}

// Load reads the config at path, or the first default file found in Dir
// when path is empty. Without any file the defaults apply. The
// STRING16_ENCODING environment variable overrides the file's encoding.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path == "" {
		path = l.discover()
	} else if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "load config"), "path", path)
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	if path != "" {
		if err := l.loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if enc := os.Getenv(domain.EnvEncoding); enc != "" {
		cfg.Encoding = domain.Encoding(enc)
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) discover() string {
	for _, name := range []string{domain.ConfigFileYAML, "string16.yml", domain.ConfigFileTOML} {
		candidate := filepath.Join(l.Dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func (l *Loader) loadFile(path string, cfg *domain.Config) error {
	// #nosec G304 -- path is chosen by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var (
		raw     fileConfig
		defined func(key string) bool
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		raw, defined, err = l.decodeYAML(data)
	case ".toml":
		raw, defined, err = l.decodeTOML(data)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "load config"), "path", path)
	}
	if err != nil {
		return zerr.With(err, "path", path)
	}

	apply(raw, defined, cfg)
	return nil
}

func (l *Loader) decodeYAML(data []byte) (fileConfig, func(string) bool, error) {
	var raw fileConfig
	keys := make(map[string]bool)

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return raw, nil, errors.Join(domain.ErrConfigParseFailed, err)
	}
	if len(doc.Content) == 0 {
		return raw, func(string) bool { return false }, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return raw, nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "expected a mapping"), "line", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keys[root.Content[i].Value] = true
	}
	if err := root.Decode(&raw); err != nil {
		return raw, nil, errors.Join(domain.ErrConfigParseFailed, err)
	}

	for _, key := range slices.Sorted(maps.Keys(keys)) {
		if !knownKeys[key] {
			l.warnUnknown(key)
		}
	}
	return raw, func(key string) bool { return keys[key] }, nil
}

func (l *Loader) decodeTOML(data []byte) (fileConfig, func(string) bool, error) {
	var raw fileConfig
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return raw, nil, errors.Join(domain.ErrConfigParseFailed, err)
	}
	for _, key := range meta.Undecoded() {
		l.warnUnknown(key.String())
	}
	return raw, func(key string) bool { return meta.IsDefined(key) }, nil
}

func (l *Loader) warnUnknown(key string) {
	if l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("ignoring unknown config key %q", key))
	}
}

// apply copies the keys present in the file over the defaults.
func apply(raw fileConfig, defined func(string) bool, cfg *domain.Config) {
	if defined("encoding") {
		cfg.Encoding = domain.Encoding(raw.Encoding)
	}
	if defined("precision") {
		cfg.Precision = raw.Precision
	}
	if defined("json_logs") {
		cfg.JSONLogs = raw.JSONLogs
	}
	if defined("trace") {
		cfg.Trace = raw.Trace
	}
	if defined("concurrency") {
		cfg.Concurrency = raw.Concurrency
	}
}
