// Package logging defines the structured-logging interface injected into every
// pmvault service, and its log/slog implementation.
//
// Nothing in this repository logs through a package-level logger: services take
// a Logger in their constructor so they can be tested with a discarding or
// buffering implementation.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "entry created", "user_id", id, "entry_id", entryID)
//
// Implementations must never be handed key material, master passwords or
// decrypted secrets.
type Logger interface {
	// Debug logs diagnostic detail.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
