package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZap_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		log      func(l Logger)
		expected string
	}{
		{
			name:     "info at info",
			level:    InfoLevel,
			log:      func(l Logger) { l.Infof("hello %s", "zoo") },
			expected: "hello zoo",
		},
		{
			name:  "debug at info is dropped",
			level: InfoLevel,
			log:   func(l Logger) { l.Debug("hidden") },
		},
		{
			name:     "debug at debug",
			level:    DebugLevel,
			log:      func(l Logger) { l.Debug("shown") },
			expected: "shown",
		},
		{
			name:  "warn at error is dropped",
			level: ErrorLevel,
			log:   func(l Logger) { l.Warn("hidden") },
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewZap(test.level, buf)
			assert.Equal(t, test.level, logger.LogLevel())

			test.log(logger)
			if test.expected == "" {
				assert.Empty(t, buf.String())
				return
			}
			entry := map[string]any{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, test.expected, entry["msg"])
		})
	}
}

func TestZap_With(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewZap(InfoLevel, buf).With("session", "abc", "xid", 7)
	logger.Info("request")

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, float64(7), entry["xid"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		err      bool
	}{
		{in: "", expected: InfoLevel},
		{in: "DEBUG", expected: DebugLevel},
		{in: "warning", expected: WarningLevel},
		{in: " error ", expected: ErrorLevel},
		{in: "loud", expected: InvalidLevel, err: true},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			level, err := ParseLevel(test.in)
			if test.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expected, level)
		})
	}
}

func TestDiscardLogger(t *testing.T) {
	DiscardLogger.Info("nothing")
	assert.Equal(t, DiscardLogger, DiscardLogger.With("k", "v"))
	assert.Panics(t, func() { DiscardLogger.Panic("boom") })
}
