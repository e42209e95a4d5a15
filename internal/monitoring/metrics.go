package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"juicetycoon/internal/game"
)

// MetricsCollector owns the prometheus registry for the game service
type MetricsCollector struct {
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	servesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serves_total",
			Help: "Serve outcomes by result",
		},
		[]string{"result"},
	)

	ordersGenerated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_generated_total",
			Help: "Orders generated",
		},
		[]string{"difficulty"},
	)

	achievementsUnlocked := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "achievements_unlocked_total",
			Help: "Achievements unlocked",
		},
		[]string{"achievement"},
	)

	scoreGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_score",
			Help: "Current session score",
		},
	)

	streakGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_streak",
			Help: "Current consecutive-success streak",
		},
	)

	orderAge := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_completion_seconds",
			Help:    "Seconds an order was active before being served",
			Buckets: prometheus.LinearBuckets(0, 5, 8),
		},
	)

	// Create metrics map
	metrics := map[string]prometheus.Collector{
		"serves":       servesTotal,
		"orders":       ordersGenerated,
		"achievements": achievementsUnlocked,
		"score":        scoreGauge,
		"streak":       streakGauge,
		"order_age":    orderAge,
	}

	// Register metrics
	for _, metric := range metrics {
		registry.MustRegister(metric)
	}

	return &MetricsCollector{
		registry: registry,
		metrics:  metrics,
	}
}

// Handler returns the HTTP handler exposing the registry.
func (mc *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{})
}

// RecordServe records a serve outcome
func (mc *MetricsCollector) RecordServe(result game.ServeResult) {
	if counter, ok := mc.metrics["serves"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(string(result)).Inc()
	}
}

// RecordOrderGenerated records a generated order
func (mc *MetricsCollector) RecordOrderGenerated(difficulty string) {
	if counter, ok := mc.metrics["orders"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(difficulty).Inc()
	}
}

// RecordAchievement records an achievement unlock
func (mc *MetricsCollector) RecordAchievement(id string) {
	if counter, ok := mc.metrics["achievements"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(id).Inc()
	}
}

// SetScore updates the score gauge
func (mc *MetricsCollector) SetScore(score int) {
	if gauge, ok := mc.metrics["score"].(prometheus.Gauge); ok {
		gauge.Set(float64(score))
	}
}

// SetStreak updates the streak gauge
func (mc *MetricsCollector) SetStreak(streak int) {
	if gauge, ok := mc.metrics["streak"].(prometheus.Gauge); ok {
		gauge.Set(float64(streak))
	}
}

// ObserveOrderAge records how long a served order was active
func (mc *MetricsCollector) ObserveOrderAge(seconds int) {
	if histogram, ok := mc.metrics["order_age"].(prometheus.Histogram); ok {
		histogram.Observe(float64(seconds))
	}
}

// Sink returns an event sink feeding the prometheus collectors from
// session events.
func (mc *MetricsCollector) Sink(difficulty func() string) game.EventSink {
	return func(event game.Event) {
		switch data := event.Data.(type) {
		case game.ServeData:
			mc.RecordServe(data.Result)
			mc.SetScore(data.Score)
			mc.SetStreak(data.Streak)
			if data.Result == game.ResultMatched {
				mc.ObserveOrderAge(data.Elapsed)
			}
		case game.TimeoutData:
			mc.RecordServe(game.ResultTimeout)
			mc.SetScore(data.Score)
		case game.OrderData:
			mc.RecordOrderGenerated(difficulty())
		case game.AchievementData:
			mc.RecordAchievement(data.AchievementID)
		}
	}
}
