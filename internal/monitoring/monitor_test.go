package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"juicetycoon/internal/game"
)

func TestNewMonitor(t *testing.T) {
	monitor := NewMonitor()

	assert.NotNil(t, monitor)
	assert.Empty(t, monitor.metrics)
}

func TestRecordAndGetMetric(t *testing.T) {
	monitor := NewMonitor()

	monitor.RecordMetric("serves_matched", 3)

	value, ok := monitor.GetMetric("serves_matched")
	assert.True(t, ok)
	assert.Equal(t, 3, value)

	_, ok = monitor.GetMetric("missing")
	assert.False(t, ok)
}

func TestGetMetricsIncludesUptime(t *testing.T) {
	monitor := NewMonitor()

	metrics := monitor.GetMetrics()
	assert.Contains(t, metrics, "uptime_seconds")
}

func TestReset(t *testing.T) {
	monitor := NewMonitor()
	monitor.RecordMetric("serves_matched", 3)

	monitor.Reset()

	_, ok := monitor.GetMetric("serves_matched")
	assert.False(t, ok)
}

func TestSinkCountsEvents(t *testing.T) {
	monitor := NewMonitor()
	sink := monitor.Sink()

	now := time.Now()
	sink(game.Event{Type: game.EventServedSuccess, At: now, Data: game.ServeData{Result: game.ResultMatched}})
	sink(game.Event{Type: game.EventServedSuccess, At: now, Data: game.ServeData{Result: game.ResultMatched}})
	sink(game.Event{Type: game.EventServedMismatch, At: now, Data: game.ServeData{Result: game.ResultMismatched}})
	sink(game.Event{Type: game.EventOrderTimeout, At: now, Data: game.TimeoutData{Penalty: 5}})
	sink(game.Event{Type: game.EventSessionEnded, At: now, Data: game.SessionEndedData{Score: 70}})

	metrics := monitor.GetMetrics()
	assert.Equal(t, 2, metrics["serves_matched"])
	assert.Equal(t, 1, metrics["serves_mismatched"])
	assert.Equal(t, 1, metrics["orders_timed_out"])
	assert.Equal(t, 1, metrics["sessions_ended"])
	assert.Equal(t, 70, metrics["last_final_score"])
	assert.Equal(t, string(game.EventSessionEnded), metrics["last_event"])
}
