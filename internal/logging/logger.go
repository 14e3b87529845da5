// Package logging defines the structured, context-aware logger used by the
// client packages and a log/slog backed implementation of it.
package logging

import "context"

// Logger takes key/value pairs after the message:
//
//	log.Info(ctx, "session restored", "user_id", id, "plan", plan)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
