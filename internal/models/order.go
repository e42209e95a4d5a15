package models

import "math"

// MinOrderSeconds is the floor applied to every derived order time
// limit regardless of how aggressive the difficulty scaling is.
const MinOrderSeconds = 5

// Order represents a concrete customer order derived from a recipe and
// a customer type under a difficulty. The ID is unique for the
// lifetime of a session so late timer ticks can never be attributed to
// a superseded order.
type Order struct {
	ID               uint64   `json:"id"`
	Recipe           Recipe   `json:"recipe"`
	Customer         Customer `json:"customer"`
	TimeLimitSeconds int      `json:"time_limit_seconds"`
	PenaltyPoints    int      `json:"penalty_points"`
}

// NewOrder derives an order from catalog entries under the given
// difficulty parameters.
func NewOrder(id uint64, recipe Recipe, customer Customer, params DifficultyParams) Order {
	limit := int(math.Floor(float64(customer.BaseTimeLimitSeconds) * params.TimeMultiplier))
	if limit < MinOrderSeconds {
		limit = MinOrderSeconds
	}
	penalty := int(math.Floor(float64(customer.BasePenaltyPoints) * params.PenaltyMultiplier))

	return Order{
		ID:               id,
		Recipe:           recipe,
		Customer:         customer,
		TimeLimitSeconds: limit,
		PenaltyPoints:    penalty,
	}
}

// MatchPoints returns the points awarded for serving this order
// correctly: the recipe's base points scaled by the customer bonus.
func (o Order) MatchPoints() int {
	return int(math.Round(float64(o.Recipe.BasePoints) * o.Customer.BonusMultiplier))
}
