// Package logger configures the process-wide structured JSON logger built on
// log/slog and carries request-scoped loggers through context.Context.
package logger
