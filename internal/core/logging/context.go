package logging

import "context"

type contextKey string

const (
	replyIDKey  contextKey = "reply_id"
	threadIDKey contextKey = "thread_id"
)

// WithReplyID adds a reply ID to the context.
func WithReplyID(ctx context.Context, replyID string) context.Context {
	return context.WithValue(ctx, replyIDKey, replyID)
}

// WithThreadID adds a thread ID to the context.
func WithThreadID(ctx context.Context, threadID string) context.Context {
	return context.WithValue(ctx, threadIDKey, threadID)
}

// GetReplyID retrieves the reply ID from the context.
// Returns empty string if not present.
func GetReplyID(ctx context.Context) string {
	if id, ok := ctx.Value(replyIDKey).(string); ok {
		return id
	}
	return ""
}

// GetThreadID retrieves the thread ID from the context.
// Returns empty string if not present.
func GetThreadID(ctx context.Context) string {
	if id, ok := ctx.Value(threadIDKey).(string); ok {
		return id
	}
	return ""
}
