package logging

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Компоненты BlockWorld, пишущие в отдельные файлы
const (
	ComponentWorldgen = "worldgen"
	ComponentGame     = "game"
)

// LoggerFactory создаёт логгер компонента
type LoggerFactory func(component string) (*Logger, error)

// LoggerManager хранит по одному логгеру на компонент
type LoggerManager struct {
	mu      sync.Mutex
	create  LoggerFactory
	loggers map[string]*Logger
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager глобальный менеджер с файловыми логгерами
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = NewLoggerManager(NewLogger)
	})
	return globalManager
}

// NewLoggerManager создаёт менеджер; nil означает NewLogger
func NewLoggerManager(create LoggerFactory) *LoggerManager {
	if create == nil {
		create = NewLogger
	}
	return &LoggerManager{
		create:  create,
		loggers: make(map[string]*Logger),
	}
}

// GetLogger возвращает логгер компонента, при первом обращении создаёт его
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if logger, ok := lm.loggers[component]; ok {
		return logger, nil
	}
	logger, err := lm.create(component)
	if err != nil {
		return nil, fmt.Errorf("logger %s: %w", component, err)
	}
	lm.loggers[component] = logger
	return logger, nil
}

// MustGetLogger как GetLogger, но при ошибке отдаёт консольный логгер
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	logger, err := lm.GetLogger(component)
	if err == nil {
		return logger
	}
	Warn("Логгер %s работает только в консоли: %v", component, err)
	return &Logger{
		component:       component,
		consoleLogger:   defaultLogger.consoleLogger,
		minConsoleLevel: INFO,
		minFileLevel:    OFF,
	}
}

// CloseAll закрывает файлы всех компонентов и забывает их
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var errs []error
	for _, logger := range lm.loggers {
		if err := logger.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", logger.Component(), err))
		}
	}
	lm.loggers = make(map[string]*Logger)
	return errors.Join(errs...)
}

// ListComponents имена компонентов по алфавиту
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// SetLogLevel меняет уровни одного компонента
func (lm *LoggerManager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	lm.mu.Lock()
	logger, ok := lm.loggers[component]
	lm.mu.Unlock()

	if !ok {
		return fmt.Errorf("logger for component %s not found", component)
	}
	logger.SetLevels(consoleLevel, fileLevel)
	return nil
}

func GetWorldgenLogger() *Logger {
	return GetLoggerManager().MustGetLogger(ComponentWorldgen)
}

func GetGameLogger() *Logger {
	return GetLoggerManager().MustGetLogger(ComponentGame)
}
