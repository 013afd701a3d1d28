// Package logging builds the slog loggers used throughout aurora and
// provides the attribute helpers and standardized field keys shared by
// all components.
package logging
