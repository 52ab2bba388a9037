// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry exposes errorEntry to the external test package.
type ErrorEntry = errorEntry

// Exported error formatting for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// Message returns the entry's message.
func (e ErrorEntry) Message() string { return e.message }
