// Package loggertest provides loggers for tests.
package loggertest

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/cecoladevelopment/site-backend/internal/logger"
)

// New creates a Logger that writes to t's log.
func New(t testing.TB) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}
