package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/blockworld/internal/config"
	"github.com/annel0/blockworld/internal/game"
	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML-файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализируем систему логирования
	logging.SetLogDir(cfg.Logging.Dir)
	if err := logging.InitDefaultLogger("blockworld"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	consoleLevel, err := logging.ParseLevel(cfg.Logging.ConsoleLevel, logging.INFO)
	if err != nil {
		logging.Warn("Неизвестный уровень консоли %q, используется %s", cfg.Logging.ConsoleLevel, consoleLevel)
	}
	fileLevel, err := logging.ParseLevel(cfg.Logging.FileLevel, logging.DEBUG)
	if err != nil {
		logging.Warn("Неизвестный уровень файла %q, используется %s", cfg.Logging.FileLevel, fileLevel)
	}
	logging.Default().SetLevels(consoleLevel, fileLevel)

	manager := logging.GetLoggerManager()
	defer manager.CloseAll()
	worldgenLog := logging.GetWorldgenLogger()
	gameLog := logging.GetGameLogger()
	for _, component := range manager.ListComponents() {
		if err := manager.SetLogLevel(component, consoleLevel, fileLevel); err != nil {
			logging.Warn("Не удалось задать уровень логов %s: %v", component, err)
		}
	}

	seed := cfg.World.GetSeed()
	size := cfg.World.GetSize()
	name := cfg.World.GetName()
	logging.Info("🌍 Запуск BlockWorld: мир %q, seed=%d, size=%d", name, seed, size)

	var (
		worldMetrics *world.Metrics
		gameMetrics  *game.Metrics
	)
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		worldMetrics = world.NewMetrics(reg)
		gameMetrics = game.NewMetrics(reg)

		go func() {
			logging.Info("📈 Prometheus /metrics доступен по адресу %s", cfg.Metrics.Addr)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
			}
		}()
	}

	session := game.NewSession(
		game.WithLogger(gameLog),
		game.WithMetrics(gameMetrics),
		game.WithWorldOptions(
			world.WithLogger(worldgenLog),
			world.WithMetrics(worldMetrics),
			world.WithProgress(func(stage string, done, total int) {
				if done == total {
					worldgenLog.Debug("Этап %s: %d/%d", stage, done, total)
				}
			}),
		),
	)

	w, err := session.CreateWorld(seed, size, name)
	if err != nil {
		logging.Error("❌ Ошибка создания мира: %v", err)
		os.Exit(1)
	}
	logging.Info("✅ Мир %q создан: блоков %d, предметов %d, существ %d, digest=%016x",
		w.Name(), w.BlockCount(), w.ItemCount(), w.CreatureCount(), w.Digest())

	info, err := session.ShowPlayerInfo(w.Player())
	if err != nil {
		logging.Error("❌ Ошибка получения информации об игроке: %v", err)
		os.Exit(1)
	}
	fmt.Println(info)

	if cfg.Metrics.Addr == "" {
		return
	}

	// Ждём сигнала, чтобы метрики оставались доступны
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
}
