package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"juicetycoon/internal/game"
)

func TestNewMetricsCollector(t *testing.T) {
	collector := NewMetricsCollector()

	assert.NotNil(t, collector)
	assert.NotNil(t, collector.registry)
	assert.Len(t, collector.metrics, 6)
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	collector := NewMetricsCollector()
	collector.RecordServe(game.ResultMatched)
	collector.SetScore(42)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	collector.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "serves_total")
	assert.Contains(t, body, "session_score 42")
}

func TestSinkFeedsCollectors(t *testing.T) {
	collector := NewMetricsCollector()
	sink := collector.Sink(func() string { return "medium" })

	now := time.Now()
	sink(game.Event{Type: game.EventServedSuccess, At: now, Data: game.ServeData{Result: game.ResultMatched, Score: 10, Streak: 1, Elapsed: 4}})
	sink(game.Event{Type: game.EventOrderGenerated, At: now, Data: game.OrderData{}})
	sink(game.Event{Type: game.EventAchievementUnlocked, At: now, Data: game.AchievementData{AchievementID: "first_order", Reward: 10}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	collector.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, `serves_total{result="matched"} 1`)
	assert.Contains(t, body, `orders_generated_total{difficulty="medium"} 1`)
	assert.Contains(t, body, `achievements_unlocked_total{achievement="first_order"} 1`)
}
