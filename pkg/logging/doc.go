// Package logging builds the log/slog loggers used by the webspace CLI.
//
// Command output goes to stdout; logs always go to stderr (or another
// writer supplied by the caller) so they never mix with machine-readable
// --json output. By default only warnings and errors are shown. --verbose
// switches to debug level, which traces every daemon request:
//
//	logger := logging.ForCLI(os.Stderr, "warn", "text", true)
//	logger.Debug("request completed", "method", "GET", "path", "/v1/images")
//
// Request and response bodies are never logged, since they may contain
// passwords.
package logging
