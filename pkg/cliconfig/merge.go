package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Socket != "" {
		target.Socket = source.Socket
		target.Sources["socket"] = sourceType
	}
	if source.User != "" {
		target.User = source.User
		target.Sources["user"] = sourceType
	}
	if source.Timeout != 0 || fieldIsSet(source, "timeout") {
		target.Timeout = source.Timeout
		target.Sources["timeout"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	// For booleans, checking `if source.X` cannot detect an explicit false.
	if boolIsSet(source, "verbose", source.Verbose) {
		target.Verbose = source.Verbose
		target.Sources["verbose"] = sourceType
	}
	if boolIsSet(source, "json", source.JSON) {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
}

func fieldIsSet(cfg *CLIConfig, key string) bool {
	return cfg.SetFields != nil && cfg.SetFields[key]
}

// boolIsSet reports whether a boolean field was explicitly set in the source.
// Without SetFields (configs built in code) only true counts as set.
func boolIsSet(cfg *CLIConfig, key string, value bool) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[key]
	}
	return value
}
