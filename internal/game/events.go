package game

import (
	"time"

	"juicetycoon/internal/models"
)

// EventType describes the kind of event emitted by the session.
type EventType string

const (
	EventPoured              EventType = "poured"
	EventServedSuccess       EventType = "served-success"
	EventServedMismatch      EventType = "served-mismatch"
	EventOrderTimeout        EventType = "order-timeout"
	EventOrderGenerated      EventType = "order-generated"
	EventCombo               EventType = "combo"
	EventAchievementUnlocked EventType = "achievement-unlocked"
	EventSessionEnded        EventType = "session-ended"
	EventInvalidAction       EventType = "invalid-action"
)

// Event represents a fire-and-forget signal produced by the session.
// Consumers (rendering, audio, metrics, the serve log) must never feed
// anything back into core state.
type Event struct {
	Type EventType `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data,omitempty"`
}

// EventSink receives session events. Sinks are invoked after the
// action that produced the event has fully resolved, so they may read
// the session but must not block.
type EventSink func(Event)

// ServeResult classifies the outcome of serving a vessel.
type ServeResult string

const (
	ResultMatched    ServeResult = "matched"
	ResultMismatched ServeResult = "mismatched"
	ResultTimeout    ServeResult = "timeout"
)

// PouredData is the payload for a poured event.
type PouredData struct {
	Vessel  int    `json:"vessel"`
	FruitID string `json:"fruit_id"`
}

// ServeData is the payload for served-success and served-mismatch
// events. Elapsed counts the seconds the order was on screen before
// the serve.
type ServeData struct {
	OrderID    uint64      `json:"order_id"`
	RecipeID   string      `json:"recipe_id"`
	CustomerID string      `json:"customer_id"`
	Result     ServeResult `json:"result"`
	Points     int         `json:"points"`
	Streak     int         `json:"streak"`
	Score      int         `json:"score"`
	Elapsed    int         `json:"elapsed"`
}

// TimeoutData is the payload for an order-timeout event.
type TimeoutData struct {
	OrderID    uint64 `json:"order_id"`
	RecipeID   string `json:"recipe_id"`
	CustomerID string `json:"customer_id"`
	Penalty    int    `json:"penalty"`
	Score      int    `json:"score"`
}

// OrderData is the payload for an order-generated event.
type OrderData struct {
	Order models.Order `json:"order"`
}

// ComboData is the payload for a combo event.
type ComboData struct {
	Bonus  int `json:"bonus"`
	Streak int `json:"streak"`
}

// AchievementData is the payload for an achievement-unlocked event.
type AchievementData struct {
	AchievementID string `json:"achievement_id"`
	Reward        int    `json:"reward"`
}

// SessionEndedData is the payload for a session-ended event.
type SessionEndedData struct {
	Score  int `json:"score"`
	Streak int `json:"streak"`
}

// InvalidActionData is the payload for an invalid-action event.
type InvalidActionData struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}
