package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvSocket    = "WEBSPACE_SOCKET"
	EnvUser      = "WEBSPACE_USER"
	EnvTimeout   = "WEBSPACE_TIMEOUT"
	EnvLogLevel  = "WEBSPACE_LOG_LEVEL"
	EnvLogFormat = "WEBSPACE_LOG_FORMAT"
	EnvVerbose   = "WEBSPACE_VERBOSE"
	EnvJSON      = "WEBSPACE_JSON"
	EnvConfig    = "WEBSPACE_CONFIG"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present (and parse) in the environment.
func LoadEnvConfig(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvSocket); v != "" {
		cfg.Socket = v
		cfg.Sources["socket"] = SourceEnv
	}

	if v := os.Getenv(EnvUser); v != "" {
		cfg.User = v
		cfg.Sources["user"] = SourceEnv
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = timeout
			cfg.Sources["timeout"] = SourceEnv
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
			cfg.Sources["verbose"] = SourceEnv
		}
	}

	if v := os.Getenv(EnvJSON); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.JSON = b
			cfg.Sources["json"] = SourceEnv
		}
	}
}
