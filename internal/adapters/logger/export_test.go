// export_test.go exports private functions for white-box testing.
package logger

// CollectErrorEntriesExported exposes collectErrorEntries to tests.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
