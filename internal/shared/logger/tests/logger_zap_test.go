package tests

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/IvanChernomyrdin/medkeeper/internal/shared/logger"
)

func TestNew_CreatesLogFileAndWrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := logger.New(logger.Options{Dir: dir, File: "auth.log"})
	require.NoError(t, err)

	l.Info("test message")
	_ = l.Sync()

	b, err := os.ReadFile(filepath.Join(dir, "auth.log"))
	require.NoError(t, err)
	s := string(b)

	require.Regexp(t, regexp.MustCompile(`\btest message\b`), s)
	// пример: 11:57:16 16.01.2026
	require.Regexp(t, regexp.MustCompile(`\b\d{2}:\d{2}:\d{2} \d{2}\.\d{2}\.\d{4}\b`), s)
}

func TestNew_RespectsLevel(t *testing.T) {
	dir := t.TempDir()

	l, err := logger.New(logger.Options{Dir: dir, File: "x.log", Level: "warn"})
	require.NoError(t, err)

	l.Info("hidden info")
	l.Warn("visible warn")
	_ = l.Sync()

	b, err := os.ReadFile(filepath.Join(dir, "x.log"))
	require.NoError(t, err)
	require.NotContains(t, string(b), "hidden info")
	require.Contains(t, string(b), "visible warn")
}

func TestNew_BadLevel_ReturnsError(t *testing.T) {
	_, err := logger.New(logger.Options{Dir: t.TempDir(), Level: "loud"})
	require.Error(t, err)
}

func TestLogOperation_WritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.Wrap(zap.New(core))

	l.LogOperation("auth", "login", false, "not_found", 1.5)
	l.LogOperation("reminder", "submit", true, "", 0.7)

	entries := logs.All()
	require.Len(t, entries, 2)

	failed := entries[0]
	require.Equal(t, zapcore.WarnLevel, failed.Level)
	fields := failed.ContextMap()
	require.Equal(t, "auth", fields["handler"])
	require.Equal(t, "login", fields["action"])
	require.Equal(t, false, fields["success"])
	require.Equal(t, "not_found", fields["kind"])

	ok := entries[1]
	require.Equal(t, zapcore.InfoLevel, ok.Level)
	_, hasKind := ok.ContextMap()["kind"]
	require.False(t, hasKind)
}
