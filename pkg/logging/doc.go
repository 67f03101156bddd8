// Package logging provides structured logging utilities for the mix CLI.
//
// # Overview
//
// This package wraps the standard library slog package with mix-specific
// defaults for consistent logging: JSON output to stderr, module/version
// context on every record, environment-based level configuration, and
// source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: detailed diagnostic information with source location
//   - INFO: general informational messages (default)
//   - WARN/WARNING: potentially problematic situations
//   - ERROR: failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("mix", version)
//	    slog.Info("starting", "step", 1.0)
//	}
//
// Setting an explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("mix", version, "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is passed:
//
//	LOG_LEVEL=debug mix target.toml banana.toml oats.toml
//
// If LOG_LEVEL is not set, the level defaults to INFO.
package logging
