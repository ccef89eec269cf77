// Package logging builds slog loggers with a compact console handler for
// interactive runs and a JSON handler for everything else.
package logging
