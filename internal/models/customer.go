package models

// Customer represents a customer type waiting on an order
type Customer struct {
	ID                   string  `json:"id" yaml:"id"`
	Name                 string  `json:"name" yaml:"name"`
	BonusMultiplier      float64 `json:"bonus_multiplier" yaml:"bonus_multiplier"`
	BaseTimeLimitSeconds int     `json:"base_time_limit_seconds" yaml:"base_time_limit_seconds"`
	BasePenaltyPoints    int     `json:"base_penalty_points" yaml:"base_penalty_points"`
	Glyph                string  `json:"glyph" yaml:"glyph"`
}

// Achievement represents an unlockable achievement. The unlock
// predicate lives in the game engine, keyed by ID; the catalog only
// carries the display data and the reward.
type Achievement struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	RewardPoints int    `json:"reward_points" yaml:"reward_points"`
}
