// Package logging provides a minimal logging facade for this module.
//
// This package defines a Logger interface that wraps a subset of the
// standard library's log/slog functionality. The interface is
// intentionally small to allow applications to provide custom
// implementations for testing, redaction, or integration with existing
// logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/openbike/bike-go/pkg/bike/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Redaction Support
//
// The package provides utilities for redacting sensitive information:
//
//	// Mark an attribute as redacted
//	logger.Info(ctx, "key loaded", logging.Redacted("sk_bytes"))
//	// Logs: sk_bytes=[redacted]
//
//	// Get the redaction placeholder
//	placeholder := logging.Placeholder() // Returns "[redacted]"
//
// # Usage in KEM Code
//
// Loggers can be passed to the KEM for debugging and observability:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "starting keygen", "level", "BIKE-L1")
//
//	// Log with redaction for sensitive data
//	logger.Debug(ctx, "sampled sparse row",
//	    logging.Redacted("h0"),
//	    "weight", 71,
//	)
//
// # Custom Implementations
//
// Applications can provide custom Logger implementations:
//
//	type customLogger struct {
//	    // ... your fields
//	}
//
//	func (l *customLogger) Debug(ctx context.Context, msg string, args ...any) {
//	    // Custom debug logic
//	}
//	// ... implement other methods
//
//	logger := &customLogger{}
//	// Use logger with the KEM
//
// # Security Considerations
//
//   - Never log secret keys (h0, h1, sigma), error vectors, or shared secrets
//   - Use logging.Redacted() to mark sensitive attributes
//   - Consider using structured logging for better auditability
//   - Ensure log storage is secure and access-controlled
package logging
