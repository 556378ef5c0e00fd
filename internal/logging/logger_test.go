package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"DEBUG", LevelDebug},
		{" Warn ", LevelWarn},
		{"ERROR", LevelError},
		{"unknown", LevelInfo}, // default
		{"", LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatJSON, ParseFormat(" Json "))
	assert.Equal(t, FormatText, ParseFormat("TEXT"))
	assert.Equal(t, FormatText, ParseFormat("unknown"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelDebug, FormatJSON, &buf)

	l.Info("test message", "key1", "value1", "key2", 42)

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "value1", entry["key1"])
	assert.Equal(t, float64(42), entry["key2"]) // JSON numbers are float64
	assert.Contains(t, entry, "ts")
}

func TestLoggerText(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelDebug, FormatText, &buf)

	l.Info("test message", "key1", "value1")

	output := buf.String()
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key1")
	assert.Contains(t, output, "value1")
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelWarn, FormatText, &buf)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLoggerWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelDebug, FormatJSON, &buf)

	l.WithRequestID("req-123").Info("test message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelDebug, FormatJSON, &buf)

	l.WithFields("base_dn", "dc=example,dc=com", "verify", true).Info("test message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "dc=example,dc=com", entry["base_dn"])
	assert.Equal(t, true, entry["verify"])
}

func TestLoggerChildIsolation(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelDebug, FormatJSON, &buf)

	child := l.WithFields("child_field", "value")

	l.Info("parent message")
	parent := decodeEntry(t, &buf)
	assert.NotContains(t, parent, "child_field")

	buf.Reset()
	child.Info("child message")
	assert.Equal(t, "value", decodeEntry(t, &buf)["child_field"])
}

func TestLoggerAllLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelDebug, FormatJSON, &buf)

	tests := []struct {
		logFunc func(string, ...interface{})
		level   string
	}{
		{l.Debug, "debug"},
		{l.Info, "info"},
		{l.Warn, "warn"},
		{l.Error, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.logFunc("test message")
			assert.Equal(t, tt.level, decodeEntry(t, &buf)["level"])
		})
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obaquery.log")

	l, err := New(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	l.WithRequestID("req-1").Debug("written to file")
	require.NoError(t, l.Sync())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), "req-1")
}

func TestNewLoggerUpperCaseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obaquery.log")

	l, err := New(Config{Level: "DEBUG", Format: "JSON", Output: path})
	require.NoError(t, err)

	l.Debug("hello", "key", "value")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry), string(data))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestLoggerCloseShared(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelInfo, FormatJSON, &buf)

	child := l.WithFields("k", "v")
	child.Info("before close")
	assert.NoError(t, child.Close())
	assert.Contains(t, buf.String(), "before close")
}

func TestNewLoggerBadOutput(t *testing.T) {
	_, err := New(Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to open log output"))
}

func TestNewDefault(t *testing.T) {
	assert.NotNil(t, NewDefault())
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	require.NotNil(t, l)

	// These should not panic
	l.Debug("test")
	l.Info("test")
	l.Warn("test")
	l.Error("test")

	assert.NotNil(t, l.WithRequestID("req-123"))
	assert.NotNil(t, l.WithFields("key", "value"))
	assert.NoError(t, l.Close())
}
