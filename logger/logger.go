package logger

// Logger provides a standardized logging interface for the Cassiopeia client.
// It defines methods for different log levels (Debug, Info, Warn, Error) to enable
// consistent logging throughout the client library. This interface allows users
// to plug in their preferred logging implementation (e.g., zap, logrus, standard log)
// or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - API request/response debugging
// - Rate meter wait tracking
// - Retry attempt tracking
// - Connection and transport issues
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client := cassiopeia.NewClient(apiKey, "na", cassiopeia.WithLogger(myLogger))
//
//	// Using with zap
//	client := cassiopeia.NewClient(apiKey, "na", cassiopeia.WithLogger(logger.NewZap(zapLogger)))
//
//	// Disable logging entirely
//	client := cassiopeia.NewClient(apiKey, "na", cassiopeia.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
