// Package telemetry provides the package-level logger facade shared by the
// number-theory and prime-generation packages.
package telemetry

import "go.uber.org/zap"

var logger *zap.Logger = zap.NewNop()

// Logger returns the process-wide logger. Defaults to a no-op logger so that
// library callers don't get unsolicited output on stderr.
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the process-wide logger, e.g. with a development or
// production zap configuration from src/main.go.
func SetLogger(l *zap.Logger) {
	logger = l
}
