package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter(buf, int(slog.LevelInfo))

	l.Debug("hidden")
	l.Info("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter(buf, 0).With("request_id", "abc")

	l.Info("hello")

	assert.Contains(t, buf.String(), "request_id=abc")
}
