// Package logging assembles structured slog loggers for surveyclean.
//
// It owns the console and JSON handlers, level parsing, and output routing,
// and exposes context helpers so every line of a cleaning run carries the
// run_id and stage fields. A no-op logger is provided for tests and wiring
// code that cannot fail.
//
// Logs are diagnostics only. The user-facing report is printed by the CLI
// and never goes through this package.
package logging
