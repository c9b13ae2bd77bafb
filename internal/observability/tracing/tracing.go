package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
)

// InjectToHTTPRequest propagates the current trace context onto an
// outbound request's headers.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier(req.Header))
}

// ExtractFromHTTPRequest resumes the trace context carried on an
// inbound request's headers.
func ExtractFromHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, headerCarrier(req.Header))
}

type headerCarrier http.Header

func (c headerCarrier) Get(key string) string {
	return http.Header(c).Get(key)
}

func (c headerCarrier) Set(key, value string) {
	http.Header(c).Set(key, value)
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
