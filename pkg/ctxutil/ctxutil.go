package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	actorKey ctxKey = "actor"
	runIDKey ctxKey = "run_id"
)

// WithActor stores the id of the user performing the operation.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey, userID)
}

// ActorFromCtx extracts the acting user id.
// Returns "" and false if the value is missing, empty, or of the wrong type.
func ActorFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithRunID stores the id of one CLI invocation.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run id as a string.
// Returns an empty string if absent or nil.
func RunIDFromCtx(ctx context.Context) string {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return ""
	}
	return id.String()
}
