package game

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics счётчики действий игрока. Нулевой указатель допустим.
type Metrics struct {
	actions *prometheus.CounterVec
	damage  *prometheus.CounterVec
}

// NewMetrics создаёт метрики действий и регистрирует их в reg
// (nil - глобальный регистр).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blockworld",
			Subsystem: "game",
			Name:      "actions_total",
			Help:      "Действия игрока по типу и результату.",
		}, []string{"action", "result"}),
		damage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blockworld",
			Subsystem: "game",
			Name:      "damage_total",
			Help:      "Суммарный нанесённый урон по цели.",
		}, []string{"target"}),
	}

	reg.MustRegister(m.actions, m.damage)
	return m
}

func (m *Metrics) action(name string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.actions.WithLabelValues(name, result).Inc()
}

func (m *Metrics) dealt(target string, dmg float64) {
	if m == nil || dmg <= 0 {
		return
	}
	m.damage.WithLabelValues(target).Add(dmg)
}
