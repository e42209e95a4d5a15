package game

import (
	"math/rand"
	"sort"
	"sync"

	"juicetycoon/internal/models"
)

// VesselCount is the number of mixing vessels available to the player.
const VesselCount = 3

// Session is the game-session state machine. It owns all mutable game
// state and serializes every action and timer tick behind one mutex,
// so a submit or serve fully resolves (including any cascading order
// regeneration) before the next handler runs. The order countdown is
// stored alongside the order it belongs to and both are replaced in
// the same critical section, which makes a tick referencing a
// superseded order impossible.
type Session struct {
	mu      sync.Mutex
	catalog *models.Catalog
	clock   Clock
	rng     *rand.Rand
	sinks   []EventSink
	pending []Event

	difficulty models.Difficulty
	active     bool
	score      int
	streak     int
	comboCount int
	serveCount int
	unlocked   map[string]bool

	order            *models.Order
	orderSeq         uint64
	sessionRemaining int
	orderRemaining   int
	vessels          [][]string
}

// Snapshot is a read-only view of the session for the presentation
// layer.
type Snapshot struct {
	Active               bool              `json:"active"`
	Difficulty           models.Difficulty `json:"difficulty"`
	Score                int               `json:"score"`
	Streak               int               `json:"streak"`
	ComboCount           int               `json:"combo_count"`
	ServeCount           int               `json:"serve_count"`
	SessionTimeRemaining int               `json:"session_time_remaining"`
	OrderTimeRemaining   int               `json:"order_time_remaining"`
	Order                *models.Order     `json:"order,omitempty"`
	Vessels              [][]string        `json:"vessels"`
	UnlockedAchievements []string          `json:"unlocked_achievements"`
}

// NewSession creates an idle session. The random source drives recipe
// and customer selection and is injectable so order generation can be
// made deterministic in tests. Call Start to begin play.
func NewSession(catalog *models.Catalog, difficulty models.Difficulty, clock Clock, rng *rand.Rand) *Session {
	return &Session{
		catalog:    catalog,
		clock:      clock,
		rng:        rng,
		difficulty: difficulty,
		unlocked:   make(map[string]bool),
		vessels:    make([][]string, VesselCount),
	}
}

// Subscribe registers a sink for session events.
func (s *Session) Subscribe(sink EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, sink)
}

// Start begins play: all counters reset, the first order is generated
// and both countdowns start from the current difficulty's settings.
func (s *Session) Start() {
	s.mu.Lock()
	s.resetLocked(s.difficulty)
	events, sinks := s.takePending()
	s.mu.Unlock()
	dispatch(sinks, events)
}

// Reset restarts the session under the current difficulty.
func (s *Session) Reset() {
	s.Start()
}

// SetDifficulty performs a full reset under the new difficulty.
func (s *Session) SetDifficulty(d models.Difficulty) {
	s.mu.Lock()
	s.resetLocked(d)
	events, sinks := s.takePending()
	s.mu.Unlock()
	dispatch(sinks, events)
}

// SubmitFruit pours a fruit into a vessel. Invalid submissions are
// silent no-ops that surface only as an invalid-action event: the
// session must be active, the vessel index valid, the fruit known, the
// vessel not already holding the active order's required count, and
// the fruit not already present in that vessel.
func (s *Session) SubmitFruit(vessel int, fruitID string) {
	s.mu.Lock()
	s.submitLocked(vessel, fruitID)
	events, sinks := s.takePending()
	s.mu.Unlock()
	dispatch(sinks, events)
}

func (s *Session) submitLocked(vessel int, fruitID string) {
	if !s.active || s.order == nil {
		s.reject("submit", "no active order")
		return
	}
	if vessel < 0 || vessel >= len(s.vessels) {
		s.reject("submit", "no such vessel")
		return
	}
	if _, ok := s.catalog.Fruit(fruitID); !ok {
		s.reject("submit", "unknown fruit")
		return
	}
	if len(s.vessels[vessel]) >= s.order.Recipe.Complexity() {
		s.reject("submit", "vessel full")
		return
	}
	for _, id := range s.vessels[vessel] {
		if id == fruitID {
			s.reject("submit", "fruit already in vessel")
			return
		}
	}

	s.vessels[vessel] = append(s.vessels[vessel], fruitID)
	s.queue(EventPoured, PouredData{Vessel: vessel, FruitID: fruitID})
}

// ServeVessel hands a vessel's contents to match evaluation against
// the active order. The vessel is emptied regardless of the outcome.
// A match awards points and extends the streak; a mismatch resets the
// streak to zero, leaves the score untouched and forces a new order.
func (s *Session) ServeVessel(vessel int) {
	s.mu.Lock()
	s.serveLocked(vessel)
	events, sinks := s.takePending()
	s.mu.Unlock()
	dispatch(sinks, events)
}

func (s *Session) serveLocked(vessel int) {
	if !s.active || s.order == nil {
		s.reject("serve", "no active order")
		return
	}
	if vessel < 0 || vessel >= len(s.vessels) {
		s.reject("serve", "no such vessel")
		return
	}
	contents := s.vessels[vessel]
	if len(contents) == 0 {
		s.reject("serve", "vessel empty")
		return
	}

	order := *s.order
	elapsed := order.TimeLimitSeconds - s.orderRemaining
	s.vessels[vessel] = nil

	if !Matches(contents, order.Recipe.FruitIDs) {
		s.streak = 0
		s.queue(EventServedMismatch, ServeData{
			OrderID:    order.ID,
			RecipeID:   order.Recipe.ID,
			CustomerID: order.Customer.ID,
			Result:     ResultMismatched,
			Streak:     s.streak,
			Score:      s.score,
			Elapsed:    elapsed,
		})
		s.generateOrderLocked()
		return
	}

	points := order.MatchPoints()
	s.score += points
	s.streak++
	s.serveCount++
	s.queue(EventServedSuccess, ServeData{
		OrderID:    order.ID,
		RecipeID:   order.Recipe.ID,
		CustomerID: order.Customer.ID,
		Result:     ResultMatched,
		Points:     points,
		Streak:     s.streak,
		Score:      s.score,
		Elapsed:    elapsed,
	})

	if s.streak >= 3 {
		bonus := points / 2
		s.score += bonus
		s.comboCount++
		s.queue(EventCombo, ComboData{Bonus: bonus, Streak: s.streak})
	}

	s.evaluateAchievementsLocked(order)
	s.generateOrderLocked()
}

// Tick advances both countdowns by one second. It is a no-op once the
// session has ended, so a runner outliving the session cannot mutate
// it. When the session countdown reaches zero the session becomes
// inactive and the order countdown freezes with it; when only the
// order countdown reaches zero the order's penalty is deducted (floor
// at zero), the timeout is signalled and a replacement order is
// generated with a fresh countdown. Timeouts never touch the streak.
func (s *Session) Tick() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}

	s.sessionRemaining--
	if s.sessionRemaining <= 0 {
		s.sessionRemaining = 0
		s.active = false
		s.queue(EventSessionEnded, SessionEndedData{Score: s.score, Streak: s.streak})
	} else {
		s.orderRemaining--
		if s.orderRemaining <= 0 && s.order != nil {
			order := *s.order
			s.score -= order.PenaltyPoints
			if s.score < 0 {
				s.score = 0
			}
			s.queue(EventOrderTimeout, TimeoutData{
				OrderID:    order.ID,
				RecipeID:   order.Recipe.ID,
				CustomerID: order.Customer.ID,
				Penalty:    order.PenaltyPoints,
				Score:      s.score,
			})
			s.generateOrderLocked()
		}
	}

	events, sinks := s.takePending()
	s.mu.Unlock()
	dispatch(sinks, events)
}

// Snapshot returns a deep-copied view of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Active:               s.active,
		Difficulty:           s.difficulty,
		Score:                s.score,
		Streak:               s.streak,
		ComboCount:           s.comboCount,
		ServeCount:           s.serveCount,
		SessionTimeRemaining: s.sessionRemaining,
		OrderTimeRemaining:   s.orderRemaining,
		Vessels:              make([][]string, len(s.vessels)),
	}
	if s.order != nil {
		order := *s.order
		order.Recipe.FruitIDs = append([]string(nil), s.order.Recipe.FruitIDs...)
		snap.Order = &order
	}
	for i, v := range s.vessels {
		vessel := make([]string, len(v))
		copy(vessel, v)
		snap.Vessels[i] = vessel
	}
	for id := range s.unlocked {
		snap.UnlockedAchievements = append(snap.UnlockedAchievements, id)
	}
	sort.Strings(snap.UnlockedAchievements)
	return snap
}

// resetLocked restores every transient field and generates the first
// order of the new session.
func (s *Session) resetLocked(d models.Difficulty) {
	s.difficulty = d
	s.active = true
	s.score = 0
	s.streak = 0
	s.comboCount = 0
	s.serveCount = 0
	s.unlocked = make(map[string]bool)
	s.sessionRemaining = d.Params().SessionSeconds
	s.vessels = make([][]string, VesselCount)
	s.generateOrderLocked()
}

// generateOrderLocked replaces the active order: uniform pick of an
// eligible recipe and a customer, fresh monotonic id, order countdown
// reset, all vessels cleared. Partial pours never carry over to the
// next order. Catalog validation guarantees the recipe pool is never
// empty.
func (s *Session) generateOrderLocked() {
	pool := s.catalog.RecipesFor(s.difficulty)
	recipe := pool[s.rng.Intn(len(pool))]
	customer := s.catalog.Customers[s.rng.Intn(len(s.catalog.Customers))]

	s.orderSeq++
	order := models.NewOrder(s.orderSeq, recipe, customer, s.difficulty.Params())
	s.order = &order
	s.orderRemaining = order.TimeLimitSeconds
	for i := range s.vessels {
		s.vessels[i] = nil
	}
	s.queue(EventOrderGenerated, OrderData{Order: order})
}

func (s *Session) reject(action, reason string) {
	s.queue(EventInvalidAction, InvalidActionData{Action: action, Reason: reason})
}

func (s *Session) queue(t EventType, data any) {
	s.pending = append(s.pending, Event{Type: t, At: s.clock.Now(), Data: data})
}

// takePending must be called with the mutex held. It hands back the
// queued events and a copy of the sink list so delivery can happen
// outside the critical section.
func (s *Session) takePending() ([]Event, []EventSink) {
	events := s.pending
	s.pending = nil
	sinks := append([]EventSink(nil), s.sinks...)
	return events, sinks
}

func dispatch(sinks []EventSink, events []Event) {
	for _, event := range events {
		for _, sink := range sinks {
			sink(event)
		}
	}
}
