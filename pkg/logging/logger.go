package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger builds the generator's hclog logger. When output is nil it
// goes to stderr, unless GDEXGEN_LOG_PATH points at a file to append
// to. GDEXGEN_JSON_LOG=1 switches to JSON records; plain output gets a
// "gdexgen: " line prefix instead.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr

		if logPath := os.Getenv("GDEXGEN_LOG_PATH"); logPath != "" {
			if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				output = file
			}
		}
	}

	jsonFormat := os.Getenv("GDEXGEN_JSON_LOG") == "1"
	if !jsonFormat {
		output = NewPrefixWriter("gdexgen: ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC, no zone suffix
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel reads the log level from GDEXGEN_LOG_LEVEL, quiet ("warn")
// when unset.
func GetLogLevel() string {
	level := os.Getenv("GDEXGEN_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return level
}
