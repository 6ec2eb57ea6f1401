// Package logging builds the zerolog loggers used across findash.
//
// Loggers are configured from a Config (level, format, output, file) and carry a
// component field per subsystem. A ULID trace ID is generated per invocation,
// stored in the context and stamped on every event logged with Ctx(ctx).
package logging
