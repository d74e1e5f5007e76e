package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Environment variables understood by every ecos command.
const (
	EnvLogLevel = "ECOS_LOG_LEVEL"
	EnvJSONLog  = "ECOS_JSON_LOG"
	EnvLogPath  = "ECOS_LOG_PATH"
)

// NewLogger creates a new hclog logger with standard settings. A nil
// output selects ECOS_LOG_PATH when set, stderr otherwise.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = defaultOutput()
	}

	// Determine if JSON format should be used
	jsonFormat := os.Getenv(EnvJSONLog) == "1"

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("⚙️ ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = "warn" // Default to warn for production safety
	}
	return level
}

func defaultOutput() io.Writer {
	if path := os.Getenv(EnvLogPath); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			return f
		}
		// Unopenable log path falls back to stderr rather than failing the command.
	}
	return os.Stderr
}
