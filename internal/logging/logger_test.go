package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_TextLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerFor(&buf, "text", "debug")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerFor(&buf, "text", "info")

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSlogLogger_WithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerFor(&buf, "json", "info").With("module", "reminders")

	log.Info(context.Background(), "sent", "recipient", "a@b.c")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "reminders", line["module"])
	assert.Equal(t, "a@b.c", line["recipient"])
	assert.Equal(t, "sent", line["msg"])
}

func TestZapLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLoggerFor(&buf, "json", "info").With("module", "http")

	log.Warn(context.Background(), "slow request", "latency_ms", 1200)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "slow request", line["msg"])
	assert.Equal(t, "http", line["module"])
	assert.EqualValues(t, 1200, line["latency_ms"])
}

func TestNew_SelectsDriver(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(Options{Driver: "slog"}, &buf)
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, l)

	l, err = New(Options{Driver: "ZAP"}, &buf)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)

	_, err = New(Options{Driver: "logrus"}, &buf)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "logrus"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	var l Logger = Nop{}
	ctx := context.TODO()
	l.Info(ctx, "x")
	l.With("k", "v").Error(ctx, "y")
}
