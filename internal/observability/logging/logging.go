package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Module labels a log record with the owning subsystem.
type Module string

// Environment selects handler format and verbosity defaults.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// ServiceInfo identifies the running binary in logs and traces.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type requestIDKey struct{}

// WithRequestID stores a request ID in the context for downstream log
// correlation and outbound header propagation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the stored request ID, or empty.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// ValidateAndExtractRequestID returns the given ID if usable, otherwise
// a fresh one.
func ValidateAndExtractRequestID(requestID string) string {
	if requestID == "" || len(requestID) > 128 {
		return uuid.NewString()
	}
	return requestID
}

// NewLogger builds the service logger. Prod gets JSON lines, dev gets
// human-readable text.
func NewLogger(env Environment, level slog.Level, info ServiceInfo, module Module) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == EnvProd {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(
		slog.String("service", info.Name),
		slog.String("version", info.Version),
		slog.String("module", string(module)),
	)
}
