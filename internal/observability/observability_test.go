package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/staffhq/staff-bot/internal/config"
)

func TestLogIncidentReturnsLoggedID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	id := LogIncident(logger, errors.New("boom"), "command failed", zap.String("command", "ping"))

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "command failed", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, id, ctx["error_id"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, "ping", ctx["command"])
}

func TestLogIncidentIDsAreUnique(t *testing.T) {
	logger := zap.NewNop()
	a := LogIncident(logger, errors.New("a"), "x")
	b := LogIncident(logger, errors.New("b"), "x")
	assert.NotEqual(t, a, b)
}

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordCommand("slash", "ping", false)
	m.RecordCommand("slash", "ping", true)
	m.RecordRequest("/query/staff", "GET", 200, time.Millisecond)
	m.RecordError("/query/staff", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Commands["slash|ping"])
	assert.Equal(t, int64(1), snap.CommandFailures["slash|ping"])
	assert.Equal(t, int64(1), snap.Requests["/query/staff|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/query/staff|GET|NOT_FOUND"])

	snap.Commands["slash|ping"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Commands["slash|ping"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordCommand("prefix", "ping", true)
	m.RecordRequest("/", "GET", 200, 0)
	assert.Empty(t, m.Snapshot().Commands)
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "chatty"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
