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

func TestNew_TextFormatWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatText, "debug", &buf)
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

func TestNew_TextFormatHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatText, "warn", &buf)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatText, "info", &buf).With("component", "pipeline")

	log.Info(context.Background(), "hello", "status", 204)

	out := buf.String()
	assert.Contains(t, out, "component=pipeline")
	assert.Contains(t, out, "status=204")
}

func TestNew_JSONFormatUsesZap(t *testing.T) {
	var buf bytes.Buffer
	log := New(FormatJSON, "info", &buf)
	require.IsType(t, &ZapLogger{}, log)

	log.With("component", "cache").Warn(context.Background(), "purged", "removed", 3)
	log.Debug(context.Background(), "not written")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "purged", entry["msg"])
	assert.Equal(t, "cache", entry["component"])
	assert.EqualValues(t, 3, entry["removed"])
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	log := Discard()
	ctx := context.TODO()
	log.Debug(ctx, "x")
	log.Info(ctx, "x")
	log.Warn(ctx, "x")
	log.Error(ctx, "x")
	log.With("k", "v").Info(ctx, "x")
}
