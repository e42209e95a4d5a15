package models

// Fruit represents a pourable fruit in the catalog
type Fruit struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
	Glyph string `json:"glyph" yaml:"glyph"`
}

// Recipe represents a juice recipe in the catalog. FruitIDs is the
// multiset of fruits a vessel must contain, one to three entries.
type Recipe struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	FruitIDs   []string `json:"fruit_ids" yaml:"fruit_ids"`
	BasePoints int      `json:"base_points" yaml:"base_points"`
}

// Complexity returns the number of fruits the recipe requires.
func (r Recipe) Complexity() int {
	return len(r.FruitIDs)
}
