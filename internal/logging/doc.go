// Package logging assembles structured slog loggers used by the dashboard and
// the API client.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so each request is tagged with
// the active view and its correlation ID. Dashboard output to the user never
// goes through this package; logs are diagnostics written to the log file (and
// stderr with --verbose).
package logging
