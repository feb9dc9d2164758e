package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	actionsDispatchedCounter     *prometheus.CounterVec
	actionsRejectedCounter       *prometheus.CounterVec
	handsPlayedCounter           *prometheus.CounterVec
	gamesCompletedCounter        prometheus.Counter
	progressionReportsCounter    prometheus.Counter
	evaluationCacheHitsCounter   prometheus.Counter
	evaluationCacheMissesCounter prometheus.Counter
}

func (m *metrics) ActionDispatched(action string) {
	m.actionsDispatchedCounter.WithLabelValues(action).Inc()
}

func (m *metrics) ActionRejected(action string) {
	m.actionsRejectedCounter.WithLabelValues(action).Inc()
}

func (m *metrics) HandPlayed(rank string) {
	m.handsPlayedCounter.WithLabelValues(rank).Inc()
}

func (m *metrics) GameCompleted() {
	m.gamesCompletedCounter.Inc()
}

func (m *metrics) ProgressionReportProcessed() {
	m.progressionReportsCounter.Inc()
}

func (m *metrics) EvaluationCacheHit() {
	m.evaluationCacheHitsCounter.Inc()
}

func (m *metrics) EvaluationCacheMiss() {
	m.evaluationCacheMissesCounter.Inc()
}

var Metrics = &metrics{
	actionsDispatchedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "game_actions_dispatched_total",
		Help: "Total number of game actions dispatched",
	}, []string{"action"}),
	actionsRejectedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "game_actions_rejected_total",
		Help: "Total number of game actions rejected with a player message",
	}, []string{"action"}),
	handsPlayedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hands_played_total",
		Help: "Total number of hands played by rank",
	}, []string{"rank"}),
	gamesCompletedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "games_completed_total",
		Help: "Total number of games that reached game over",
	}),
	progressionReportsCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "progression_reports_processed_total",
		Help: "Total number of completion reports applied to progression",
	}),
	evaluationCacheHitsCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "evaluation_cache_hits_total",
		Help: "Total number of hand evaluations served from the cache",
	}),
	evaluationCacheMissesCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "evaluation_cache_misses_total",
		Help: "Total number of hand evaluations computed",
	}),
}
