package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newTestLogger(t *testing.T, cfg Config) (Logger, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	l, err := newLogger(cfg, zapcore.AddSync(&out))
	require.NoError(t, err)
	return l, &out
}

func decodeLines(t *testing.T, out *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONEncoding(t *testing.T) {
	l, out := newTestLogger(t, Config{Level: "debug", Encoding: EncodingJSON})

	l.Named("guard").With("method", "Query").Info("call rejected")

	entries := decodeLines(t, out)
	require.Len(t, entries, 1)
	assert.Equal(t, "call rejected", entries[0][messageKey])
	assert.Equal(t, "INFO", entries[0][levelKey])
	assert.Equal(t, "guard", entries[0][nameKey])
	assert.Equal(t, "Query", entries[0]["method"])
}

func TestLevelFilter(t *testing.T) {
	l, out := newTestLogger(t, Config{Level: "warn", Encoding: EncodingJSON})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	entries := decodeLines(t, out)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0][messageKey])
}

func TestWarnxExpandsErrx(t *testing.T) {
	l, out := newTestLogger(t, Config{Level: "debug", Encoding: EncodingJSON})

	l.Warnx(errx.New("object gone", errx.WithCode("OBJECT_DISPOSED"), errx.WithType(errx.T_Conflict)))

	entries := decodeLines(t, out)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0][levelKey])
	assert.Equal(t, "OBJECT_DISPOSED", entries[0]["error_code"])
	assert.Contains(t, entries[0][messageKey], "object gone")
}

func TestPrettyEncoding(t *testing.T) {
	l, out := newTestLogger(t, Config{Level: "debug", Encoding: EncodingPretty})

	l.With("receiver", "*Conn").Error("disposed")
	l.Info("plain")

	text := out.String()
	assert.Contains(t, text, "ERROR")
	assert.Contains(t, text, "disposed")
	assert.Contains(t, text, "\n{\n  \"receiver\": \"*Conn\"\n}")
	assert.Contains(t, text, "plain\n")
}

func TestInvalidLevel(t *testing.T) {
	_, err := newLogger(Config{Level: "loud", Encoding: EncodingJSON}, zapcore.AddSync(&bytes.Buffer{}))
	assert.Error(t, err)
}

func TestDisabled(t *testing.T) {
	l, out := newTestLogger(t, Config{Disable: true})

	l.Error("nothing")
	assert.Empty(t, out.String())
}
