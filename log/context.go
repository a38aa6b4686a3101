package log

import (
	"context"

	"github.com/google/uuid"
)

type ContextKey string

const (
	ContextKeyRequestID ContextKey = "logContextKeyRequestID"
)

// NewRequestID returns a context carrying a freshly generated
// request id, together with the id itself
func NewRequestID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return PutRequestID(ctx, id), id
}

func PutRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// GetRequestID returns the request id stored in the context or
// an empty string if none is set
func GetRequestID(ctx context.Context) string {
	value := ctx.Value(ContextKeyRequestID)
	if value == nil {
		return ""
	}

	requestID, ok := value.(string)
	if !ok {
		return ""
	}

	return requestID
}
