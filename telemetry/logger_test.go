package telemetry_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtrgo/lookahead/telemetry"
)

func TestLogger_JSONFormatEmitsParsableLines(t *testing.T) {
	var buf bytes.Buffer
	l := telemetry.NewLogger(telemetry.LoggerConfig{Level: telemetry.LevelInfo, Format: telemetry.FormatJSON, Output: &buf})

	l.Info("built segment", "segment", 3, "samples", 42)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "built segment", record["message"])
	require.Equal(t, float64(3), record["segment"])
	require.Equal(t, float64(42), record["samples"])
}

func TestLogger_DebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	l := telemetry.NewLogger(telemetry.LoggerConfig{Level: telemetry.LevelInfo, Format: telemetry.FormatJSON, Output: &buf})

	l.Debug("should not appear")
	require.Zero(t, buf.Len())
}

func TestLogger_WarnSatisfiesProfilerLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	l := telemetry.NewLogger(telemetry.LoggerConfig{Level: telemetry.LevelWarn, Format: telemetry.FormatJSON, Output: &buf})

	var warner interface {
		Warn(msg string, fields ...interface{})
	} = l
	warner.Warn("no sources found", "segment", 1)

	require.Contains(t, buf.String(), "no sources found")
}

func TestLogger_OddFieldCountIsReportedNotPanicked(t *testing.T) {
	var buf bytes.Buffer
	l := telemetry.NewLogger(telemetry.LoggerConfig{Level: telemetry.LevelInfo, Format: telemetry.FormatJSON, Output: &buf})

	require.NotPanics(t, func() {
		l.Info("odd fields", "segment")
	})
	require.Contains(t, buf.String(), "telemetry_error")
}

func TestLogger_WithAddsPersistentField(t *testing.T) {
	var buf bytes.Buffer
	l := telemetry.NewLogger(telemetry.LoggerConfig{Level: telemetry.LevelInfo, Format: telemetry.FormatJSON, Output: &buf})
	child := l.With("run_id", "abc123")

	child.Info("started")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "abc123", record["run_id"])
}
