package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	Intents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mines",
		Name:      "intents_total",
		Help:      "Intents applied to game controllers.",
	}, []string{"action"})

	IgnoredIntents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mines",
		Name:      "intents_ignored_total",
		Help:      "Intents that left the board untouched.",
	}, []string{"action"})

	GamesLost = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mines",
		Name:      "games_lost_total",
		Help:      "Games that ended on a mine.",
	})

	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mines",
		Name:      "sessions_active",
		Help:      "Game sessions held in memory.",
	})
)

func init() {
	Registry.MustRegister(
		Intents,
		IgnoredIntents,
		GamesLost,
		ActiveSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
