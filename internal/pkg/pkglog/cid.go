package pkglog

import "context"

type correlationIDKey struct{}

// CorrelationID reports the request correlation ID carried by ctx. Work that
// did not start from an HTTP request, like loading or the terminal session,
// has none.
func CorrelationID(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	return cid, ok && cid != ""
}

// WithCorrelationID returns a copy of ctx carrying cid.
func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
