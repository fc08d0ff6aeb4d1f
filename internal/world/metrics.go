package world

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics Prometheus-метрики мира. Нулевой указатель допустим: все методы
// ничего не делают, если метрики не подключены.
type Metrics struct {
	generationDuration *prometheus.HistogramVec
	blocks             prometheus.Gauge
	items              prometheus.Gauge
	creatures          prometheus.Gauge
	mutations          *prometheus.CounterVec
}

// NewMetrics создаёт метрики и регистрирует их в reg.
// Если reg == nil, используется глобальный регистр.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		generationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "blockworld",
			Subsystem: "worldgen",
			Name:      "stage_duration_seconds",
			Help:      "Длительность этапов генерации мира.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"stage"}),
		blocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blockworld",
			Subsystem: "world",
			Name:      "blocks",
			Help:      "Количество блоков в мире.",
		}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blockworld",
			Subsystem: "world",
			Name:      "items",
			Help:      "Количество стопок предметов, лежащих в мире.",
		}),
		creatures: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blockworld",
			Subsystem: "world",
			Name:      "creatures",
			Help:      "Количество существ в мире.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blockworld",
			Subsystem: "world",
			Name:      "mutations_total",
			Help:      "Изменения состояния мира по типам.",
		}, []string{"op"}),
	}

	reg.MustRegister(m.generationDuration, m.blocks, m.items, m.creatures, m.mutations)
	return m
}

func (m *Metrics) observeStage(stage string, started time.Time) {
	if m == nil {
		return
	}
	m.generationDuration.WithLabelValues(stage).Observe(time.Since(started).Seconds())
}

func (m *Metrics) mutation(op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
}

// setCounts обновляет размеры разреженных карт
func (m *Metrics) setCounts(blocks, items, creatures int) {
	if m == nil {
		return
	}
	m.blocks.Set(float64(blocks))
	m.items.Set(float64(items))
	m.creatures.Set(float64(creatures))
}
