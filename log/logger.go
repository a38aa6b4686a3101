package log

import "context"

// Fields is the sink a Loggable writes its key/value pairs into
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by any type that knows how to
// describe itself as a set of log fields
type Loggable interface {
	Log(fields Fields)
}

type MapFields map[string]interface{}

func (m MapFields) Log(fields Fields) {
	for key, value := range m {
		fields.Add(key, value)
	}
}

// Logger is the structured logger used across the client. The
// context is used to extract the request id of the run
type Logger interface {
	ForClass(pkg string, class string) Logger
	Debug(ctx context.Context, msg string, loggable ...Loggable)
	Info(ctx context.Context, msg string, loggable ...Loggable)
	Warn(ctx context.Context, msg string, loggable ...Loggable)
	Error(ctx context.Context, msg string, loggable ...Loggable)
}
