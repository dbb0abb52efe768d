package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddAndRemoveWriter will test the Logger.AddWriter and Logger.RemoveWriter functions to ensure that they work
// as expected.
func TestAddAndRemoveWriter(t *testing.T) {
	logger := NewLogger(zerolog.InfoLevel, false)

	var structured, unstructured bytes.Buffer
	logger.AddWriter(&structured, STRUCTURED)
	logger.AddWriter(&unstructured, UNSTRUCTURED)
	assert.Len(t, logger.writers, 2)

	// Duplicate writers are ignored
	logger.AddWriter(&structured, STRUCTURED)
	logger.AddWriter(&unstructured, UNSTRUCTURED)
	assert.Len(t, logger.writers, 2)

	logger.Info("foo")
	assert.Contains(t, structured.String(), `"message":"foo"`)
	assert.Contains(t, unstructured.String(), "foo")

	logger.RemoveWriter(&structured)
	logger.RemoveWriter(&unstructured)
	assert.Len(t, logger.writers, 0)

	// Nothing more is written once the writers are removed
	structured.Reset()
	unstructured.Reset()
	logger.Info("bar")
	assert.Empty(t, structured.String())
	assert.Empty(t, unstructured.String())
}

// TestLevelFiltering ensures events below the logger's level are dropped.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.WarnLevel, false, &buf)

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")

	logger.SetLevel(zerolog.DebugLevel)
	assert.EqualValues(t, zerolog.DebugLevel, logger.Level())
	logger.Debug("now kept")
	assert.Contains(t, buf.String(), "now kept")
}

// TestSubLoggerStructuredOutput ensures sub-logger context, errors and structured info end up in the JSON output.
func TestSubLoggerStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.InfoLevel, false, &buf).NewSubLogger("module", VALUE_GENERATION_SERVICE)

	logger.Error("value ", 42, " rejected", errors.New("boom"), StructuredLogInfo{"bitLength": 8})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.EqualValues(t, "value 42 rejected", event["message"])
	assert.EqualValues(t, VALUE_GENERATION_SERVICE, event["module"])
	assert.EqualValues(t, "boom", event["error"])
	assert.EqualValues(t, "error", event["level"])
	assert.EqualValues(t, map[string]any{"bitLength": float64(8)}, event["info"])
}

// TestSubLoggerKeepsContextAcrossWriters ensures writers added after NewSubLogger still receive its context.
func TestSubLoggerKeepsContextAcrossWriters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.InfoLevel, false).NewSubLogger("module", VALUE_GENERATION_SERVICE)
	logger.AddWriter(&buf, STRUCTURED)

	logger.Info("hello")
	assert.Contains(t, buf.String(), `"module":"valuegeneration"`)
}

// TestGlobalLoggerDisabled ensures the default global logger emits nothing.
func TestGlobalLoggerDisabled(t *testing.T) {
	assert.EqualValues(t, zerolog.Disabled, GlobalLogger.Level())
	assert.NotPanics(t, func() {
		GlobalLogger.Info("ignored")
		GlobalLogger.NewSubLogger("module", "test").Error(errors.New("ignored"))
	})
}
