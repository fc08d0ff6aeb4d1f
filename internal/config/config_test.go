package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
world:
  seed: 1234
  size: 33
  name: caves
logging:
  console_level: warn
metrics:
  addr: ":2112"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.World.GetSeed())
	assert.Equal(t, 33, cfg.World.GetSize())
	assert.Equal(t, "caves", cfg.World.GetName())
	assert.Equal(t, "warn", cfg.Logging.ConsoleLevel)
	assert.Equal(t, DefaultFileLevel, cfg.Logging.FileLevel, "Незаданные поля берутся из Default()")
	assert.Equal(t, ":2112", cfg.Metrics.Addr)
}

func TestLoadZeroSeedIsExplicit(t *testing.T) {
	path := writeConfig(t, "world:\n  seed: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.World.GetSeed(), "Явный сид 0 не должен заменяться значением по умолчанию")
}

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	t.Setenv("BLOCKWORLD_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, cfg.World.GetSize())
	assert.Equal(t, DefaultName, cfg.World.GetName())
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("BLOCKWORLD_SEED", "77")
	t.Setenv("BLOCKWORLD_SIZE", "16")
	t.Setenv("BLOCKWORLD_NAME", "env-world")

	cfg := Default()
	assert.Equal(t, int64(77), cfg.World.GetSeed())
	assert.Equal(t, 16, cfg.World.GetSize())
	assert.Equal(t, "env-world", cfg.World.GetName())
}

func TestLoadRejectsNegativeSize(t *testing.T) {
	path := writeConfig(t, "world:\n  size: -4\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
