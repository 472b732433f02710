// Package cliconfig resolves configuration for the webspace CLI.
package cliconfig

import (
	"errors"
	"fmt"
	"time"
)

// CLIConfig represents the complete configuration for the webspace CLI.
// Values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.webspacerc.yaml in current directory)
// 4. Global config file (~/.config/webspace/config.yaml)
// 5. Default values (lowest priority)
//
// When --config names a file explicitly it replaces both 3 and 4.
type CLIConfig struct {
	// Socket is the path to the daemon's Unix socket.
	Socket string `yaml:"socket" json:"socket"`

	// User to perform operations as (only works for webspace admins).
	User string `yaml:"user,omitempty" json:"user,omitempty"`

	// Timeout is the per-request timeout in seconds.
	Timeout int `yaml:"timeout" json:"timeout"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`
	Verbose   bool   `yaml:"verbose" json:"verbose"`

	// JSON switches command output to JSON.
	JSON bool `yaml:"json" json:"json"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records which keys were explicitly present in the source,
	// so that an explicit false can override a true.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceFlag    = "flag"
)

// maxTimeout caps the request timeout at one hour.
const maxTimeout = 3600

// Validate checks that the configuration is usable.
func (c *CLIConfig) Validate() error {
	var errs []error
	if c.Socket == "" {
		errs = append(errs, errors.New("socket path cannot be empty"))
	}
	if c.Timeout < 0 || c.Timeout > maxTimeout {
		errs = append(errs, fmt.Errorf("timeout %d is out of range (0-%d)", c.Timeout, maxTimeout))
	}
	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("logFormat %q must be text or json", c.LogFormat))
	}
	return errors.Join(errs...)
}

// RequestTimeout returns Timeout as a duration. Zero disables the timeout.
func (c *CLIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
