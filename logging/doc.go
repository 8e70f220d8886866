// Package logging builds the slog loggers used by the configuration
// resolver. It outputs logs in JSON format and is the logger behind the
// resolver's WithLogLevel option.
package logging
