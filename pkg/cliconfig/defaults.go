package cliconfig

import "github.com/netsoc/webspace-cli/pkg/webspaced"

// DefaultSocket is where webspaced listens by default.
const DefaultSocket = webspaced.DefaultSocketPath

// DefaultTimeout is the default request timeout in seconds. Creating a
// webspace or verifying a domain can take a while.
const DefaultTimeout = 300

// DefaultLogLevel only shows warnings and errors.
const DefaultLogLevel = "warn"

// DefaultLogFormat is human-readable text.
const DefaultLogFormat = "text"

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Socket:    DefaultSocket,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	for _, key := range []string{"socket", "timeout", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
