package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vow/internal/logger"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.New(logger.Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerWritesStructuredEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.WithSuite("user-input").Info("suite loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "user-input", entry["suite"])
	require.Equal(t, "suite loaded", entry["message"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	log.Info("not written")
	log.Debug("not written either")
	require.Zero(t, buf.Len())

	log.Warn("written")
	require.NotZero(t, buf.Len())
}

func TestViolationEntry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf})
	require.NoError(t, err)

	log.Violation("username", []string{"non_empty", "min_len"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "username", entry["contract"])
	require.Equal(t, []any{"non_empty", "min_len"}, entry["violated"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *logger.Logger
	log.Info("ignored")
	log.Error(nil, "ignored")
	require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
}
