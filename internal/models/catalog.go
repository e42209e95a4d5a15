package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog aggregates the static game data: fruits, recipes, customer
// types and achievements. Catalogs are read-only once validated.
type Catalog struct {
	Fruits       []Fruit       `json:"fruits" yaml:"fruits"`
	Recipes      []Recipe      `json:"recipes" yaml:"recipes"`
	Customers    []Customer    `json:"customers" yaml:"customers"`
	Achievements []Achievement `json:"achievements" yaml:"achievements"`
}

// DefaultCatalog returns the built-in game data.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Fruits: []Fruit{
			{ID: "apple", Name: "Apple", Color: "green", Glyph: "🍎"},
			{ID: "orange", Name: "Orange", Color: "orange", Glyph: "🍊"},
			{ID: "grape", Name: "Grape", Color: "purple", Glyph: "🍇"},
			{ID: "banana", Name: "Banana", Color: "yellow", Glyph: "🍌"},
			{ID: "strawberry", Name: "Strawberry", Color: "pink", Glyph: "🍓"},
			{ID: "blueberry", Name: "Blueberry", Color: "blue", Glyph: "🫐"},
			{ID: "pineapple", Name: "Pineapple", Color: "yellow", Glyph: "🍍"},
			{ID: "mango", Name: "Mango", Color: "orange", Glyph: "🥭"},
		},
		Recipes: []Recipe{
			{ID: "apple_juice", Name: "Apple Juice", FruitIDs: []string{"apple"}, BasePoints: 10},
			{ID: "orange_juice", Name: "Orange Juice", FruitIDs: []string{"orange"}, BasePoints: 10},
			{ID: "grape_juice", Name: "Grape Juice", FruitIDs: []string{"grape"}, BasePoints: 15},
			{ID: "strawberry_juice", Name: "Strawberry Juice", FruitIDs: []string{"strawberry"}, BasePoints: 15},
			{ID: "citrus_blend", Name: "Citrus Blend", FruitIDs: []string{"apple", "orange"}, BasePoints: 25},
			{ID: "fruit_punch", Name: "Fruit Punch", FruitIDs: []string{"apple", "grape"}, BasePoints: 25},
			{ID: "strawberry_banana", Name: "Strawberry Banana", FruitIDs: []string{"banana", "strawberry"}, BasePoints: 30},
			{ID: "tropical_mix", Name: "Tropical Mix", FruitIDs: []string{"pineapple", "mango"}, BasePoints: 35},
			{ID: "orchard_medley", Name: "Orchard Medley", FruitIDs: []string{"apple", "orange", "grape"}, BasePoints: 50},
			{ID: "berry_blast", Name: "Berry Blast", FruitIDs: []string{"strawberry", "banana", "blueberry"}, BasePoints: 45},
		},
		Customers: []Customer{
			{ID: "regular", Name: "Regular", BonusMultiplier: 1.0, BaseTimeLimitSeconds: 20, BasePenaltyPoints: 5, Glyph: "👤"},
			{ID: "hungry", Name: "Hungry", BonusMultiplier: 1.5, BaseTimeLimitSeconds: 15, BasePenaltyPoints: 8, Glyph: "😋"},
			{ID: "gym_bro", Name: "Gym Bro", BonusMultiplier: 0.5, BaseTimeLimitSeconds: 25, BasePenaltyPoints: 3, Glyph: "🏃"},
			{ID: "critic", Name: "Critic", BonusMultiplier: 2.0, BaseTimeLimitSeconds: 12, BasePenaltyPoints: 10, Glyph: "🧐"},
		},
		Achievements: []Achievement{
			{ID: "first_order", Name: "First Pour", Description: "Serve your first order", RewardPoints: 10},
			{ID: "score_100", Name: "Century", Description: "Reach a score of 100", RewardPoints: 25},
			{ID: "streak_5", Name: "On a Roll", Description: "Serve five orders in a row", RewardPoints: 50},
			{ID: "critic_please", Name: "Critic's Choice", Description: "Satisfy the critic", RewardPoints: 30},
			{ID: "combo_king", Name: "Combo King", Description: "Land three combo bonuses", RewardPoints: 40},
		},
	}
}

// LoadCatalog reads a catalog from a YAML file and validates it.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Validate asserts the catalog invariants the game engine relies on.
// A catalog that passes validation can never produce an empty
// candidate pool at order generation time, so generation failures are
// ruled out before a session starts.
func (c *Catalog) Validate() error {
	if len(c.Fruits) == 0 {
		return fmt.Errorf("catalog has no fruits")
	}
	if len(c.Recipes) == 0 {
		return fmt.Errorf("catalog has no recipes")
	}
	if len(c.Customers) == 0 {
		return fmt.Errorf("catalog has no customers")
	}

	fruits := make(map[string]bool, len(c.Fruits))
	for _, f := range c.Fruits {
		if f.ID == "" {
			return fmt.Errorf("fruit with empty id")
		}
		if fruits[f.ID] {
			return fmt.Errorf("duplicate fruit id %q", f.ID)
		}
		fruits[f.ID] = true
	}

	for _, r := range c.Recipes {
		if n := r.Complexity(); n < 1 || n > 3 {
			return fmt.Errorf("recipe %q requires %d fruits, want 1 to 3", r.ID, n)
		}
		for _, id := range r.FruitIDs {
			if !fruits[id] {
				return fmt.Errorf("recipe %q references unknown fruit %q", r.ID, id)
			}
		}
	}

	for _, cust := range c.Customers {
		if cust.BaseTimeLimitSeconds <= 0 {
			return fmt.Errorf("customer %q has non-positive time limit", cust.ID)
		}
		if cust.BonusMultiplier <= 0 {
			return fmt.Errorf("customer %q has non-positive bonus multiplier", cust.ID)
		}
	}

	for _, d := range Difficulties() {
		if len(c.RecipesFor(d)) == 0 {
			return fmt.Errorf("no recipes eligible for difficulty %q", d)
		}
	}

	return nil
}

// RecipesFor returns the recipes eligible for order generation under
// the given difficulty.
func (c *Catalog) RecipesFor(d Difficulty) []Recipe {
	params := d.Params()
	var eligible []Recipe
	for _, r := range c.Recipes {
		if params.Admits(r) {
			eligible = append(eligible, r)
		}
	}
	return eligible
}

// Fruit looks up a fruit by id.
func (c *Catalog) Fruit(id string) (Fruit, bool) {
	for _, f := range c.Fruits {
		if f.ID == id {
			return f, true
		}
	}
	return Fruit{}, false
}

// Achievement looks up an achievement by id.
func (c *Catalog) Achievement(id string) (Achievement, bool) {
	for _, a := range c.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
