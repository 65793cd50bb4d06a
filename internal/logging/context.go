package logging

import "context"

type contextKey struct{}

// ContextKey is the context key under which a request's LogData travels. It
// is exported so middleware that builds contexts indirectly (huma) can attach
// the value too.
var ContextKey = contextKey{}

// NewContext attaches a LogData to the context so handlers further down can
// record timings and fields against the request's log entry.
func NewContext(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, ContextKey, logData)
}

// GetLogData returns the LogData attached to the context, or nil.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(ContextKey).(*LogData)
	return logData
}
