package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultSeed         int64 = 1
	DefaultSize               = 64
	DefaultName               = "world"
	DefaultConsoleLevel       = "info"
	DefaultFileLevel          = "debug"
	DefaultLogDir             = "logs"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// WorldConfig параметры генерации мира
type WorldConfig struct {
	Seed *int64 `yaml:"seed"`
	Size int    `yaml:"size"`
	Name string `yaml:"name"`
}

type LoggingConfig struct {
	ConsoleLevel string `yaml:"console_level"`
	FileLevel    string `yaml:"file_level"`
	Dir          string `yaml:"dir"`
}

type MetricsConfig struct {
	// Addr адрес HTTP-эндпоинта Prometheus, при пустом значении эндпоинт не поднимается
	Addr string `yaml:"addr"`
}

// GetSeed возвращает сид с приоритетом: config -> env -> default
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != nil {
		return *w.Seed
	}
	if envVal := os.Getenv("BLOCKWORLD_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return DefaultSeed
}

// GetSize возвращает размер мира с поддержкой fallback значений
func (w *WorldConfig) GetSize() int {
	return getIntWithEnvFallback(w.Size, "BLOCKWORLD_SIZE", DefaultSize)
}

// GetName возвращает имя мира
func (w *WorldConfig) GetName() string {
	if w.Name != "" {
		return w.Name
	}
	if envVal := os.Getenv("BLOCKWORLD_NAME"); envVal != "" {
		return envVal
	}
	return DefaultName
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	if configValue > 0 {
		return configValue
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	return defaultValue
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			ConsoleLevel: DefaultConsoleLevel,
			FileLevel:    DefaultFileLevel,
			Dir:          DefaultLogDir,
		},
	}
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV BLOCKWORLD_CONFIG или возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("BLOCKWORLD_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет явно заданные значения
func (c *Config) Validate() error {
	if c.World.Size < 0 {
		return fmt.Errorf("world.size должен быть положительным, получено %d", c.World.Size)
	}
	return nil
}
