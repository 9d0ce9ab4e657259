package xlogger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		conf     Config
		expected slog.Handler
	}{
		{
			name: "JSON handler with debug level",
			conf: Config{
				Level:     "debug",
				LogType:   "json",
				AddSource: true,
			},
			expected: &slog.JSONHandler{},
		},
		{
			name: "text handler with info level",
			conf: Config{
				Level:   "info",
				LogType: "text",
			},
			expected: &slog.TextHandler{},
		},
		{
			name: "default handler for unknown log type",
			conf: Config{
				Level:   "warn",
				LogType: "unknown",
			},
			expected: &slog.TextHandler{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.conf)
			require.NotNil(t, logger)
			assert.IsType(t, tt.expected, logger.Handler())
		})
	}
}

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{Level: "warn", LogType: "json", Output: &buf})
	logger.Info("dropped")
	logger.Warn("reconstructed", slog.String("secret", "3"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "reconstructed", record["msg"])
	assert.Equal(t, "3", record["secret"])
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.logLevel), "level %q", tt.logLevel)
	}
}

func TestReplaceAttr(t *testing.T) {
	source := slog.AnyValue(&slog.Source{
		File: "/home/build/go/src/github.com/vitalvas/polysecret/shamir/shamir.go",
		Line: 42,
	})

	tests := []struct {
		name     string
		conf     Config
		attr     slog.Attr
		expected slog.Attr
	}{
		{
			name:     "source path inside file path",
			conf:     Config{SourcePath: "github.com/vitalvas/polysecret/"},
			attr:     slog.Attr{Key: slog.SourceKey, Value: source},
			expected: slog.String("source", "shamir/shamir.go:42"),
		},
		{
			name:     "source path as prefix",
			conf:     Config{SourcePath: "/home/build/go/src/github.com/vitalvas/polysecret/"},
			attr:     slog.Attr{Key: slog.SourceKey, Value: source},
			expected: slog.String("source", "shamir/shamir.go:42"),
		},
		{
			name:     "without source path",
			conf:     Config{},
			attr:     slog.Attr{Key: slog.SourceKey, Value: source},
			expected: slog.String("source", "/home/build/go/src/github.com/vitalvas/polysecret/shamir/shamir.go:42"),
		},
		{
			name:     "non-source attribute",
			conf:     Config{},
			attr:     slog.String("path", "shares.json"),
			expected: slog.String("path", "shares.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := replaceAttr(tt.conf)(nil, tt.attr)
			assert.Equal(t, tt.expected, result)
		})
	}
}
