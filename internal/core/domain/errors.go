package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML or TOML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigFormat is returned when the config file extension is neither YAML nor TOML.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config format, expected .yaml, .yml or .toml")

	// ErrInvalidEncoding is returned when an input encoding name is not recognized.
	ErrInvalidEncoding = zerr.New("invalid encoding, expected utf-8, utf-16, utf-16le, utf-16be or latin1")

	// ErrInvalidPrecision is returned when a precision is outside [0, 100].
	ErrInvalidPrecision = zerr.New("invalid precision, expected a value between 0 and 100")

	// ErrInvalidConcurrency is returned when the concurrency limit is negative.
	ErrInvalidConcurrency = zerr.New("invalid concurrency, expected a positive value")

	// ErrInputReadFailed is returned when an input file or stdin cannot be read.
	ErrInputReadFailed = zerr.New("failed to read input")

	// ErrDecodeFailed is returned when input bytes cannot be decoded with the selected encoding.
	ErrDecodeFailed = zerr.New("failed to decode input")

	// ErrNoInput is returned when a command that needs text receives none.
	ErrNoInput = zerr.New("no input given")

	// ErrInvalidNumber is returned when a number argument cannot be parsed.
	ErrInvalidNumber = zerr.New("invalid number")

	// ErrScriptFailed is returned when a script throws or fails to compile.
	ErrScriptFailed = zerr.New("script failed")

	// ErrScriptInterrupted is returned when a script is stopped because its context ended.
	ErrScriptInterrupted = zerr.New("script interrupted")

	// ErrExploreFailed is returned when the interactive explorer exits with an error.
	ErrExploreFailed = zerr.New("explorer failed")
)
