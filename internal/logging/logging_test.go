package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("", "")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = New("debug", "json")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestConsoleEncoderConfig_Color(t *testing.T) {
	logLine := func(color bool) string {
		var buf bytes.Buffer
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig(color)),
			zapcore.AddSync(&buf),
			zapcore.WarnLevel,
		)
		zap.New(core).Warn("could not load data")
		return buf.String()
	}

	plain := logLine(false)
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("expected no ANSI escapes without a terminal, got %q", plain)
	}
	if !strings.HasPrefix(plain, "WARN") {
		t.Errorf("expected line to start with WARN, got %q", plain)
	}

	colored := logLine(true)
	assert.Contains(t, colored, "\x1b[")
}
