package applog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// scopeFieldName defines the key for the "scope" field in structured logs.
const scopeFieldName = "scope"

// NewLogger creates a console zerolog.Logger writing to stderr at the given
// level. Stdout is left to the report output.
// This instance is intended to be passed to other components via Dependency Injection.
func NewLogger(level zerolog.Level) zerolog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	// Define the order of parts in the console output.
	partsOrder := []string{
		zerolog.LevelFieldName,
		zerolog.TimestampFieldName,
		scopeFieldName,
		zerolog.MessageFieldName,
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    out != os.Stderr,
		TimeFormat: time.RFC3339,
		PartsOrder: partsOrder,
		// FormatPrepare intercepts fields just before printing
		// to render the scope as [SCOPE].
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = ""
			}
			return nil
		},
		// The scope is already printed through PartsOrder.
		FieldsExclude: []string{scopeFieldName},
	}

	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// WithScope is a helper for components (like the dictionary or the dataset
// loader) to create a sub-logger with their component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}
