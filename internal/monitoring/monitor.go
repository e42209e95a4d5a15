package monitoring

import (
	"sync"
	"time"

	"juicetycoon/internal/game"
)

// Monitor collects running totals for the stats endpoint
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// Sink returns an event sink that keeps per-outcome totals for the
// stats endpoint.
func (m *Monitor) Sink() game.EventSink {
	return func(event game.Event) {
		m.metricsMutex.Lock()
		defer m.metricsMutex.Unlock()

		switch event.Type {
		case game.EventServedSuccess:
			m.bump("serves_matched")
		case game.EventServedMismatch:
			m.bump("serves_mismatched")
		case game.EventOrderTimeout:
			m.bump("orders_timed_out")
		case game.EventOrderGenerated:
			m.bump("orders_generated")
		case game.EventCombo:
			m.bump("combos")
		case game.EventAchievementUnlocked:
			m.bump("achievements_unlocked")
		case game.EventSessionEnded:
			m.bump("sessions_ended")
			if data, ok := event.Data.(game.SessionEndedData); ok {
				m.metrics["last_final_score"] = data.Score
			}
		case game.EventInvalidAction:
			m.bump("invalid_actions")
		}
		m.metrics["last_event"] = string(event.Type)
		m.metrics["last_event_at"] = event.At.Format(time.RFC3339)
	}
}

// bump must be called with the mutex held.
func (m *Monitor) bump(name string) {
	count, _ := m.metrics[name].(int)
	m.metrics[name] = count + 1
}
