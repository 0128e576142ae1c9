package cli

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/printmax/enquiry-desk/pkg/ctxutil"
)

// Handler runs one command with its remaining arguments.
type Handler func(ctx context.Context, args []string) error

// Middleware is a function that wraps a Handler.
type Middleware func(Handler) Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(h) results in mw1(mw2(h)), so mw1 executes first.
func Chain(mws ...Middleware) Middleware {
	return func(final Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// RunID assigns a fresh run id unless the context already carries one.
func RunID(next Handler) Handler {
	return func(ctx context.Context, args []string) error {
		if ctxutil.RunIDFromCtx(ctx) == "" {
			ctx = ctxutil.WithRunID(ctx, uuid.New())
		}
		return next(ctx, args)
	}
}

// Actor records userID as the acting user. An empty id leaves the context as is.
func Actor(userID string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, args []string) error {
			if userID != "" {
				ctx = ctxutil.WithActor(ctx, userID)
			}
			return next(ctx, args)
		}
	}
}

// Logger logs each command with its name, outcome, duration and run id.
func Logger(logger *slog.Logger, command string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, args []string) error {
			start := time.Now()
			err := next(ctx, args)

			attrs := []slog.Attr{
				slog.String("command", command),
				slog.Duration("duration", time.Since(start)),
				slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
			}
			if actor, ok := ctxutil.ActorFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("actor", actor))
			}

			level := slog.LevelInfo
			if err != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.LogAttrs(ctx, level, "cli.command", attrs...)
			return err
		}
	}
}

// Recovery turns a panic inside a command into an error and logs the stack.
func Recovery(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorContext(ctx, "panic recovered",
						slog.Any("error", r),
						slog.String("stack", string(debug.Stack())),
					)
					err = fmt.Errorf("internal error: %v", r)
				}
			}()
			return next(ctx, args)
		}
	}
}
