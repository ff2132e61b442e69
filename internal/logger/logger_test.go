package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{Encoding: "console", Level: "not-a-level"})
	assert.NotNil(t, l)
	l.Info("logger ready", zap.String("encoding", "console"))
}

func TestNopSatisfiesInterface(t *testing.T) {
	var l ZapLogger = zap.NewNop()
	l.Debug("discarded")
	assert.NoError(t, l.Sync())
}
