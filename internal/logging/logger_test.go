package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug", INFO)
	require.NoError(t, err)
	assert.Equal(t, DEBUG, level)

	level, err = ParseLevel("", WARN)
	require.NoError(t, err)
	assert.Equal(t, WARN, level, "Пустая строка должна давать fallback")

	_, err = ParseLevel("loud", INFO)
	assert.Error(t, err)
}

func TestWriterLoggerFiltersLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("worldgen", &buf, WARN)

	logger.Debug("скрытое сообщение")
	logger.Info("тоже скрыто")
	logger.Warn("предупреждение %d", 1)
	logger.Error("ошибка")

	out := buf.String()
	assert.NotContains(t, out, "скрытое")
	assert.NotContains(t, out, "тоже скрыто")
	assert.Contains(t, out, "[WARN] [worldgen] предупреждение 1")
	assert.Contains(t, out, "[ERROR] [worldgen] ошибка")
}

func TestDiscardLogger(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		logger.Error("ничего не пишется")
	})
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("nil логгер")
	})
}

func TestNewLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	SetLogDir(dir)
	defer SetLogDir("logs")

	logger, err := NewLogger("filetest")
	require.NoError(t, err)
	logger.SetLevels(OFF, DEBUG)

	logger.Debug("в файл")
	require.NoError(t, logger.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "filetest_"))

	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [filetest] в файл")
}

func TestLoggerManagerSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	created := 0
	lm := NewLoggerManager(func(component string) (*Logger, error) {
		created++
		return NewWriterLogger(component, &buf, INFO), nil
	})

	logger, err := lm.GetLogger(ComponentGame)
	require.NoError(t, err)
	again, err := lm.GetLogger(ComponentGame)
	require.NoError(t, err)
	assert.Same(t, logger, again)
	assert.Equal(t, 1, created, "логгер компонента создаётся один раз")

	require.NoError(t, lm.SetLogLevel(ComponentGame, ERROR, OFF))

	logger.Info("не должно попасть")
	assert.Empty(t, buf.String())

	assert.Error(t, lm.SetLogLevel("unknown", INFO, INFO))
	assert.Equal(t, []string{"game"}, lm.ListComponents())

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}

func TestLoggerManagerFactoryError(t *testing.T) {
	lm := NewLoggerManager(func(component string) (*Logger, error) {
		return nil, errors.New("нет доступа к каталогу")
	})

	_, err := lm.GetLogger(ComponentWorldgen)
	assert.ErrorContains(t, err, "worldgen")

	logger := lm.MustGetLogger(ComponentWorldgen)
	require.NotNil(t, logger)
	assert.Equal(t, ComponentWorldgen, logger.Component())
	assert.Empty(t, lm.ListComponents())
}
